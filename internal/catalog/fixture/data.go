package fixture

import (
	"time"

	"github.com/SpongeBUG/tierra-collectives/internal/domain"
)

func image(id, url, altText string) domain.ProductImage {
	return domain.ProductImage{
		ID:      id,
		URL:     url,
		AltText: altText,
		Width:   800,
		Height:  1000,
	}
}

func variant(id, title, price, comparePrice string) domain.ProductVariant {
	v := domain.ProductVariant{
		ID:               id,
		Title:            title,
		Price:            domain.Money{Amount: price, CurrencyCode: "USD"},
		Available:        true,
		SKU:              "SKU-" + id,
		RequiresShipping: true,
		Taxable:          true,
		Weight:           1,
		WeightUnit:       "kg",
	}
	if comparePrice != "" {
		v.CompareAtPrice = &domain.Money{Amount: comparePrice, CurrencyCode: "USD"}
	}
	return v
}

func date(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// products is the static development catalog: a small set of handcrafted
// goods from artisan vendors.
var products = []domain.Product{
	{
		ID:          "prod1",
		Title:       "Artisan Ceramic Vase",
		Handle:      "artisan-ceramic-vase",
		Description: "This handcrafted ceramic vase is made using traditional techniques passed down through generations. Each piece is unique, showcasing the natural variations that occur in the firing process.",
		DescriptionHTML: "<p>This handcrafted ceramic vase is made using traditional techniques passed down through generations. " +
			"Each piece is unique, showcasing the natural variations that occur in the firing process.</p>",
		ProductType: "Home Decor",
		Tags:        []string{"Ceramics", "Vase", "Handmade", "Home Decor"},
		Vendor:      "Artesanías Mexicanas",
		Images: []domain.ProductImage{
			image("img1", "https://images.unsplash.com/photo-1606760227091-3dd870d97f1d?auto=format&fit=crop&w=800&h=1000&q=80", "Handcrafted ceramic vase"),
			image("img2", "https://images.unsplash.com/photo-1580480055273-228ff5388ef8?auto=format&fit=crop&w=800&h=1000&q=80", "Ceramic vase alternate view"),
		},
		Variants: []domain.ProductVariant{
			variant("var1", "Small", "68.00", "75.00"),
			variant("var2", "Medium", "88.00", "95.00"),
			variant("var3", "Large", "108.00", "120.00"),
		},
		AvailableForSale: true,
		CreatedAt:        date("2023-05-15T10:00:00Z"),
		UpdatedAt:        date("2023-06-01T14:30:00Z"),
	},
	{
		ID:          "prod2",
		Title:       "Handwoven Wall Hanging",
		Handle:      "handwoven-wall-hanging",
		Description: "This wall hanging is handwoven by skilled artisans using natural fibers. The intricate patterns are inspired by ancient traditions and each piece tells a story.",
		DescriptionHTML: "<p>This wall hanging is handwoven by skilled artisans using natural fibers. " +
			"The natural dyes create rich, earthy tones that will add warmth to any space in your home.</p>",
		ProductType: "Wall Art",
		Tags:        []string{"Textile", "Wall Art", "Handwoven", "Home Decor"},
		Vendor:      "Peruvian Textiles",
		Images: []domain.ProductImage{
			image("img3", "https://images.unsplash.com/photo-1574848972692-653de072edd6?auto=format&fit=crop&w=800&h=1000&q=80", "Handwoven textile wall hanging"),
		},
		Variants: []domain.ProductVariant{
			variant("var4", "Small", "120.00", "140.00"),
			variant("var5", "Large", "180.00", "210.00"),
		},
		AvailableForSale: true,
		CreatedAt:        date("2023-04-20T09:15:00Z"),
		UpdatedAt:        date("2023-05-25T11:45:00Z"),
	},
	{
		ID:          "prod3",
		Title:       "Wooden Serving Bowl Set",
		Handle:      "wooden-serving-bowl-set",
		Description: "This set of wooden serving bowls is hand-carved from sustainable teak wood. Each bowl showcases the natural grain of the wood, making every piece unique.",
		DescriptionHTML: "<p>This set of wooden serving bowls is hand-carved from sustainable teak wood. " +
			"The food-safe finish ensures these bowls are as practical as they are beautiful.</p>",
		ProductType: "Kitchen & Dining",
		Tags:        []string{"Woodwork", "Kitchen", "Handcarved"},
		Vendor:      "Balinese Craftsmen",
		Images: []domain.ProductImage{
			image("img5", "https://images.unsplash.com/photo-1574845605422-b52f937356da?auto=format&fit=crop&w=800&h=1000&q=80", "Wooden serving bowl set"),
		},
		Variants: []domain.ProductVariant{
			variant("var6", "Set of 3", "95.00", ""),
			variant("var7", "Set of 5", "145.00", "160.00"),
		},
		AvailableForSale: true,
		CreatedAt:        date("2023-03-10T08:00:00Z"),
		UpdatedAt:        date("2023-05-12T16:20:00Z"),
	},
	{
		ID:          "prod4",
		Title:       "Silver Filigree Earrings",
		Handle:      "silver-filigree-earrings",
		Description: "These delicate earrings are handcrafted using the ancient art of silver filigree. Each pair represents hours of meticulous work by master silversmiths.",
		DescriptionHTML: "<p>These delicate earrings are handcrafted using the ancient art of silver filigree. " +
			"Each pair represents hours of meticulous work by master silversmiths.</p>",
		ProductType: "Jewelry",
		Tags:        []string{"Jewelry", "Silver", "Filigree", "Earrings"},
		Vendor:      "Taxco Silversmiths",
		Images: []domain.ProductImage{
			image("img7", "https://images.unsplash.com/photo-1629360783079-a4cffb6d3ff4?auto=format&fit=crop&w=800&h=1000&q=80", "Handcrafted silver earrings"),
		},
		Variants: []domain.ProductVariant{
			variant("var8", "Default", "85.00", ""),
		},
		AvailableForSale: true,
		CreatedAt:        date("2023-06-05T12:30:00Z"),
		UpdatedAt:        date("2023-06-18T09:10:00Z"),
	},
	{
		ID:          "prod5",
		Title:       "Handwoven Market Basket",
		Handle:      "handwoven-market-basket",
		Description: "This sturdy market basket is handwoven from elephant grass by skilled weavers. Perfect for shopping trips, picnics, or as decorative storage.",
		DescriptionHTML: "<p>This sturdy market basket is handwoven from elephant grass by skilled weavers. " +
			"Perfect for shopping trips, picnics, or as decorative storage.</p>",
		ProductType: "Home Decor",
		Tags:        []string{"Basket", "Handwoven", "Storage"},
		Vendor:      "Ghanaian Weavers",
		Images: []domain.ProductImage{
			image("img9", "https://images.unsplash.com/photo-1592220858775-3ad208431138?auto=format&fit=crop&w=800&h=1000&q=80", "Handwoven basket"),
		},
		Variants: []domain.ProductVariant{
			variant("var9", "Natural", "55.00", ""),
			variant("var10", "Indigo Trim", "62.00", "70.00"),
		},
		AvailableForSale: true,
		CreatedAt:        date("2023-02-28T11:00:00Z"),
		UpdatedAt:        date("2023-04-30T10:05:00Z"),
	},
}

var collectionDescriptions = map[string]string{
	"Home Decor":       "Elevate your living space with our handcrafted home decor items. Each piece is carefully made by skilled artisans using traditional techniques.",
	"Wall Art":         "Transform your walls with our collection of handmade wall art. From macramé to woven tapestries, each piece adds texture and warmth to your space.",
	"Kitchen & Dining": "Bring artisanal beauty to your table with our handcrafted kitchen and dining essentials. Functional art that makes every meal special.",
	"Jewelry":          "Adorn yourself with our collection of handcrafted jewelry. Each piece tells a story of tradition, skill, and artistic expression.",
}

const defaultCollectionDescription = "Discover our curated collection of handcrafted products. Made with care by skilled artisans from around the world."
