package seed

// Item is one catalog entry ready to be pushed to the backend.
type Item struct {
	Name        string
	Description string
	Category    string
	SubCategory string
	PriceCents  int64
	ImageURL    string
	Bestseller  bool
}

// Catalog returns the built-in bracelet collection, split across the two
// storefront categories.
func Catalog() []Item {
	return []Item{
		{
			Name:        "Celestial Amethyst Healing Bracelet",
			Description: "Premium AAA-grade amethyst stones set in 18K white gold. Known for promoting calmness, balance, and peace. Each stone is hand-selected for its exceptional clarity and deep purple hue.",
			Category:    "Luxury Healing",
			SubCategory: "Amethyst",
			PriceCents:  287000,
			ImageURL:    "https://images.pexels.com/photos/6011555/pexels-photo-6011555.jpeg",
			Bestseller:  true,
		},
		{
			Name:        "Rose Quartz Divine Love Bracelet",
			Description: "Exquisite rose quartz crystals in 14K rose gold setting. The stone of unconditional love and infinite peace. Promotes compassion, tenderness, and emotional healing.",
			Category:    "Luxury Healing",
			SubCategory: "Rose Quartz",
			PriceCents:  245000,
			ImageURL:    "https://images.pexels.com/photos/7697409/pexels-photo-7697409.jpeg",
			Bestseller:  true,
		},
		{
			Name:        "Black Tourmaline Protection Bracelet",
			Description: "Rare black tourmaline stones in sterling silver with gold accents. Powerful protective stone that repels negative energy and promotes emotional stability.",
			Category:    "Luxury Healing",
			SubCategory: "Black Tourmaline",
			PriceCents:  189500,
			ImageURL:    "https://images.pexels.com/photos/8442322/pexels-photo-8442322.jpeg",
		},
		{
			Name:        "Jade Prosperity & Harmony Bracelet",
			Description: "Imperial green jade beads set in 18K yellow gold. Attracts good luck and prosperity while promoting harmony and balance. Highly prized in Eastern traditions.",
			Category:    "Luxury Healing",
			SubCategory: "Jade",
			PriceCents:  265000,
			ImageURL:    "https://images.pexels.com/photos/6011554/pexels-photo-6011554.jpeg",
		},
		{
			Name:        "Clear Quartz Energy Amplifier",
			Description: "Master healing crystal in platinum setting. Clear quartz amplifies energy and thought, bringing clarity and harmony. Known as the most versatile healing stone.",
			Category:    "Luxury Healing",
			SubCategory: "Clear Quartz",
			PriceCents:  229900,
			ImageURL:    "https://images.pexels.com/photos/8442321/pexels-photo-8442321.jpeg",
		},
		{
			Name:        "Lapis Lazuli Wisdom Bracelet",
			Description: "Deep blue lapis lazuli with gold pyrite flecks, set in 14K gold. Stone of wisdom and truth. Enhances intellectual ability and stimulates enlightenment.",
			Category:    "Luxury Healing",
			SubCategory: "Lapis Lazuli",
			PriceCents:  218000,
			ImageURL:    "https://images.pexels.com/photos/6011553/pexels-photo-6011553.jpeg",
		},
		{
			Name:        "Crystal Tennis Bracelet",
			Description: "AAA quality cubic zirconia stones in a classic tennis bracelet design. Brilliant sparkle and timeless elegance for everyday glamour.",
			Category:    "Fashion",
			SubCategory: "Classic",
			PriceCents:  8900,
			ImageURL:    "https://images.pexels.com/photos/10434598/pexels-photo-10434598.jpeg",
			Bestseller:  true,
		},
		{
			Name:        "Golden Chain Link Bracelet",
			Description: "Bold gold-plated chain link design. Perfect statement piece that adds sophistication to any outfit. Durable and tarnish-resistant.",
			Category:    "Fashion",
			SubCategory: "Modern",
			PriceCents:  6900,
			ImageURL:    "https://images.pexels.com/photos/8442323/pexels-photo-8442323.jpeg",
		},
		{
			Name:        "Pearl Strand Bracelet",
			Description: "AAA quality freshwater pearls with sterling silver clasp. Elegant and feminine, perfect for adding a touch of grace to any ensemble.",
			Category:    "Fashion",
			SubCategory: "Classic",
			PriceCents:  9500,
			ImageURL:    "https://images.pexels.com/photos/8442315/pexels-photo-8442315.jpeg",
		},
		{
			Name:        "Rose Gold Cuff Bracelet",
			Description: "Sleek rose gold plated cuff with minimalist design. Adjustable and comfortable, perfect for stacking or wearing alone.",
			Category:    "Fashion",
			SubCategory: "Modern",
			PriceCents:  7900,
			ImageURL:    "https://images.pexels.com/photos/10434597/pexels-photo-10434597.jpeg",
		},
		{
			Name:        "Sapphire Blue Crystal Bracelet",
			Description: "Deep blue AAA crystals that shimmer like real sapphires. Stunning color and brilliant cut make this an eye-catching accessory.",
			Category:    "Fashion",
			SubCategory: "Elegant",
			PriceCents:  9200,
			ImageURL:    "https://images.pexels.com/photos/8442314/pexels-photo-8442314.jpeg",
		},
		{
			Name:        "Charm Bracelet Collection",
			Description: "Delicate silver chain with removable charms. Customize your story with interchangeable pendants. Comes with 3 starter charms.",
			Category:    "Fashion",
			SubCategory: "Casual",
			PriceCents:  7500,
			ImageURL:    "https://images.pexels.com/photos/8442320/pexels-photo-8442320.jpeg",
		},
		{
			Name:        "Infinity Symbol Bracelet",
			Description: "Sterling silver infinity symbol with AAA crystals. Represents eternal love and friendship. Perfect gift for someone special.",
			Category:    "Fashion",
			SubCategory: "Romantic",
			PriceCents:  8500,
			ImageURL:    "https://images.pexels.com/photos/10434599/pexels-photo-10434599.jpeg",
		},
		{
			Name:        "Beaded Crystal Stretch Bracelet",
			Description: "Colorful AAA crystal beads on elastic cord. Easy to wear, no clasp needed. Available in rainbow colors for vibrant style.",
			Category:    "Fashion",
			SubCategory: "Casual",
			PriceCents:  4900,
			ImageURL:    "https://images.pexels.com/photos/8442319/pexels-photo-8442319.jpeg",
		},
		{
			Name:        "Art Deco Vintage Bracelet",
			Description: "Inspired by 1920s glamour. Geometric design with clear crystals and antiqued gold finish. A timeless piece of wearable art.",
			Category:    "Fashion",
			SubCategory: "Vintage",
			PriceCents:  9800,
			ImageURL:    "https://images.pexels.com/photos/8442318/pexels-photo-8442318.jpeg",
		},
		{
			Name:        "Double Wrap Leather Bracelet",
			Description: "Premium Italian leather with sterling silver accents. Wraps twice around wrist for bohemian chic look. Adjustable sizing.",
			Category:    "Fashion",
			SubCategory: "Bohemian",
			PriceCents:  6500,
			ImageURL:    "https://images.pexels.com/photos/10434596/pexels-photo-10434596.jpeg",
		},
		{
			Name:        "Emerald Green Crystal Bracelet",
			Description: "Vibrant emerald-colored AAA crystals in silver setting. Rich color and brilliant sparkle. Perfect for adding pop of color.",
			Category:    "Fashion",
			SubCategory: "Elegant",
			PriceCents:  8800,
			ImageURL:    "https://images.pexels.com/photos/8442317/pexels-photo-8442317.jpeg",
		},
		{
			Name:        "Minimalist Bar Bracelet",
			Description: "Simple gold bar on delicate chain. Sleek and modern design. Can be personalized with engraving. Perfect for everyday elegance.",
			Category:    "Fashion",
			SubCategory: "Minimalist",
			PriceCents:  7200,
			ImageURL:    "https://images.pexels.com/photos/10434595/pexels-photo-10434595.jpeg",
		},
		{
			Name:        "Stacking Bracelet Set",
			Description: "Set of 3 coordinating bracelets. Mix of textures and finishes - smooth, textured, and crystal-embellished. Wear together or separately.",
			Category:    "Fashion",
			SubCategory: "Modern",
			PriceCents:  9500,
			ImageURL:    "https://images.pexels.com/photos/8442316/pexels-photo-8442316.jpeg",
		},
		{
			Name:        "Byzantine Chain Bracelet",
			Description: "Intricate Byzantine weave in gold plating. Traditional craftsmanship meets modern style. Strong and substantial feel.",
			Category:    "Fashion",
			SubCategory: "Traditional",
			PriceCents:  8200,
			ImageURL:    "https://images.pexels.com/photos/10434594/pexels-photo-10434594.jpeg",
		},
		{
			Name:        "Rainbow Gemstone Bracelet",
			Description: "Multi-colored AAA crystals representing chakras. Each stone brings different energy and meaning. Beautiful spectrum of colors.",
			Category:    "Fashion",
			SubCategory: "Bohemian",
			PriceCents:  9100,
			ImageURL:    "https://images.pexels.com/photos/8442313/pexels-photo-8442313.jpeg",
		},
		{
			Name:        "Filigree Cuff Bracelet",
			Description: "Delicate filigree metalwork in antique silver. Intricate lace-like patterns. Lightweight yet statement-making.",
			Category:    "Fashion",
			SubCategory: "Vintage",
			PriceCents:  7800,
			ImageURL:    "https://images.pexels.com/photos/10434593/pexels-photo-10434593.jpeg",
		},
		{
			Name:        "Snake Chain Bracelet",
			Description: "Smooth snake chain in sterling silver. Fluid movement and comfortable fit. Classic design that never goes out of style.",
			Category:    "Fashion",
			SubCategory: "Classic",
			PriceCents:  6800,
			ImageURL:    "https://images.pexels.com/photos/8442312/pexels-photo-8442312.jpeg",
		},
		{
			Name:        "Heart Charm Bracelet",
			Description: "Multiple heart charms in mixed metals. Romantic and playful. Perfect for expressing love and affection.",
			Category:    "Fashion",
			SubCategory: "Romantic",
			PriceCents:  7600,
			ImageURL:    "https://images.pexels.com/photos/10434592/pexels-photo-10434592.jpeg",
		},
		{
			Name:        "Magnetic Closure Bracelet",
			Description: "Easy-on magnetic clasp with crystal pave. Perfect for those who struggle with traditional clasps. Secure and stylish.",
			Category:    "Fashion",
			SubCategory: "Practical",
			PriceCents:  8400,
			ImageURL:    "https://images.pexels.com/photos/8442311/pexels-photo-8442311.jpeg",
		},
		{
			Name:        "Twisted Rope Bracelet",
			Description: "Gold and silver twisted together in rope design. Durable and eye-catching. Mixed metal look is very on-trend.",
			Category:    "Fashion",
			SubCategory: "Modern",
			PriceCents:  7300,
			ImageURL:    "https://images.pexels.com/photos/10434591/pexels-photo-10434591.jpeg",
		},
		{
			Name:        "Crystal Flower Bracelet",
			Description: "Delicate flower motifs with crystal centers. Feminine and garden-inspired. Perfect for spring and summer style.",
			Category:    "Fashion",
			SubCategory: "Romantic",
			PriceCents:  8700,
			ImageURL:    "https://images.pexels.com/photos/8442310/pexels-photo-8442310.jpeg",
		},
		{
			Name:        "Geometric Link Bracelet",
			Description: "Modern geometric shapes in brushed gold. Contemporary design for the fashion-forward. Architectural and bold.",
			Category:    "Fashion",
			SubCategory: "Modern",
			PriceCents:  8100,
			ImageURL:    "https://images.pexels.com/photos/10434590/pexels-photo-10434590.jpeg",
		},
		{
			Name:        "Evil Eye Protection Bracelet",
			Description: "Traditional evil eye charm with blue crystals. Believed to ward off negative energy. Beautiful and meaningful.",
			Category:    "Fashion",
			SubCategory: "Spiritual",
			PriceCents:  6700,
			ImageURL:    "https://images.pexels.com/photos/8442309/pexels-photo-8442309.jpeg",
		},
		{
			Name:        "Hammered Metal Cuff",
			Description: "Hand-hammered texture in mixed metals. Artisan-crafted look. Each piece has unique variations. Substantial and stylish.",
			Category:    "Fashion",
			SubCategory: "Artisan",
			PriceCents:  9300,
			ImageURL:    "https://images.pexels.com/photos/10434589/pexels-photo-10434589.jpeg",
		},
		{
			Name:        "Crystal Slider Bracelet",
			Description: "Adjustable slider closure with sparkling crystals. One size fits all. Easy to put on and comfortable to wear.",
			Category:    "Fashion",
			SubCategory: "Practical",
			PriceCents:  7100,
			ImageURL:    "https://images.pexels.com/photos/8442308/pexels-photo-8442308.jpeg",
		},
	}
}
