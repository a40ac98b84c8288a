package stimuli

// ProductsData is the shopping-listing corpus: five audio products plus five
// irrelevant accessories the length filter can drop or keep.
var ProductsData = []ProductItem{
	{
		ID:               1,
		ProductName:      "SoundWave Pro Wireless Headphones",
		Brand:            "AudioTech",
		Price:            "$129.99",
		OriginalPrice:    "$179.99",
		Discount:         "28% off",
		Description:      "Premium noise-canceling wireless headphones with 30-hour battery life. Features include Bluetooth 5.0, built-in microphone, and comfortable over-ear design. Available in Black, Silver, and Navy Blue.",
		Rating:           4.7,
		ReviewCount:      2453,
		InStock:          true,
		FreeShipping:     true,
		DeliveryEstimate: "2-3 business days",
	},
	{
		ID:               2,
		ProductName:      "UltraBass Wireless Earbuds",
		Brand:            "BassKing",
		Price:            "$89.95",
		OriginalPrice:    "$99.95",
		Discount:         "10% off",
		Description:      "Water-resistant earbuds with enhanced bass technology. 24-hour battery with charging case, touch controls, and voice assistant support. Includes 3 sizes of silicone tips for perfect fit. Available in Black only.",
		Rating:           4.5,
		ReviewCount:      1876,
		InStock:          true,
		FreeShipping:     true,
		DeliveryEstimate: "1-2 business days",
	},
	{
		ID:               3,
		ProductName:      "AirFlex Studio Headphones",
		Brand:            "SoundMaster",
		Price:            "$199.99",
		OriginalPrice:    "$249.99",
		Discount:         "20% off",
		Description:      "Professional-grade studio headphones with advanced active noise cancellation and Hi-Res audio certification. Features include foldable design, detachable cable option, and premium leather ear cushions. Available in Matte Black and White.",
		Rating:           4.8,
		ReviewCount:      1203,
		InStock:          true,
		FreeShipping:     true,
		DeliveryEstimate: "3-5 business days",
	},
	{
		ID:               4,
		ProductName:      "SportFit Wireless Earbuds",
		Brand:            "FitTech",
		Price:            "$59.99",
		OriginalPrice:    "$79.99",
		Discount:         "25% off",
		Description:      "Designed for athletes with secure ear hooks and IPX7 waterproof rating. 8-hour battery life, quick charge feature (15 min for 2 hours), and built-in heart rate monitor. Available in Black/Red, Neon Yellow, and Teal.",
		Rating:           4.3,
		ReviewCount:      3542,
		InStock:          true,
		FreeShipping:     false,
		DeliveryEstimate: "2-3 business days",
	},
	{
		ID:               5,
		ProductName:      "KidSafe Wireless Headphones",
		Brand:            "SafeSound",
		Price:            "$49.99",
		OriginalPrice:    "$59.99",
		Discount:         "17% off",
		Description:      "Volume-limiting headphones designed for children ages 3-12. Durable, flexible design with 85dB volume limit for hearing protection. 20-hour battery life and fun sticker pack included. Available in Blue, Pink, and Green.",
		Rating:           4.6,
		ReviewCount:      892,
		InStock:          true,
		FreeShipping:     true,
		DeliveryEstimate: "2-4 business days",
	},
	{
		ID:               6,
		ProductName:      "Smartphone Charging Cable (6ft)",
		Brand:            "PowerConnect",
		Price:            "$14.99",
		OriginalPrice:    "$19.99",
		Discount:         "25% off",
		Description:      "Durable braided charging cable with fast-charge capability. Compatible with all PowerConnect devices and adapters. Tangle-free design with reinforced connectors.",
		Rating:           4.4,
		ReviewCount:      5621,
		InStock:          true,
		FreeShipping:     false,
		DeliveryEstimate: "1-2 business days",
		Irrelevant:       true,
	},
	{
		ID:               7,
		ProductName:      "Bluetooth Speaker Portable",
		Brand:            "SoundMaster",
		Price:            "$39.99",
		OriginalPrice:    "$49.99",
		Discount:         "20% off",
		Description:      "Compact bluetooth speaker with 12-hour battery life. IPX5 water resistance and built-in microphone for calls. Available in Black, Blue, and Red.",
		Rating:           4.2,
		ReviewCount:      1843,
		InStock:          true,
		FreeShipping:     false,
		DeliveryEstimate: "2-3 business days",
		Irrelevant:       true,
	},
	{
		ID:               8,
		ProductName:      "Wireless Charging Pad",
		Brand:            "PowerConnect",
		Price:            "$29.99",
		OriginalPrice:    "$34.99",
		Discount:         "14% off",
		Description:      "Fast wireless charging for compatible smartphones and earbuds. Sleek, slim design with LED indicator and non-slip surface. Available in Black only.",
		Rating:           4.5,
		ReviewCount:      2134,
		InStock:          true,
		FreeShipping:     true,
		DeliveryEstimate: "2-3 business days",
		Irrelevant:       true,
	},
	{
		ID:               9,
		ProductName:      "Smartphone Camera Lens Kit",
		Brand:            "OptixPro",
		Price:            "$24.99",
		OriginalPrice:    "$34.99",
		Discount:         "29% off",
		Description:      "3-in-1 smartphone lens kit including wide angle, macro, and fisheye lenses. Universal clip-on design fits most smartphones. Includes carrying pouch and lens cloth.",
		Rating:           4.0,
		ReviewCount:      967,
		InStock:          true,
		FreeShipping:     false,
		DeliveryEstimate: "3-5 business days",
		Irrelevant:       true,
	},
	{
		ID:               10,
		ProductName:      "Laptop Sleeve Case 15-inch",
		Brand:            "TechProtect",
		Price:            "$19.99",
		OriginalPrice:    "$24.99",
		Discount:         "20% off",
		Description:      "Padded neoprene sleeve with water-resistant exterior. Fits most 15-inch laptops and has additional pocket for accessories. Available in Gray, Black, and Navy.",
		Rating:           4.6,
		ReviewCount:      1425,
		InStock:          true,
		FreeShipping:     true,
		DeliveryEstimate: "2-4 business days",
		Irrelevant:       true,
	},
}

// ProductPick names a product recommended for a use case.
type ProductPick struct {
	UseCase string `json:"useCase"`
	ID      int    `json:"id"`
	Name    string `json:"name"`
}

// ProductAISummary is the pre-generated narrative rendition of the listing.
type ProductAISummary struct {
	Overview        string `json:"overview"`
	PricingInsights struct {
		AverageDiscount string `json:"averageDiscount"`
		MaxDiscountID   int    `json:"maxDiscountId"`
		MaxDiscount     string `json:"maxDiscount"`
		PriceMin        string `json:"priceMin"`
		PriceMax        string `json:"priceMax"`
	} `json:"pricingInsights"`
	RatingsOverview struct {
		AverageRating  float64 `json:"averageRating"`
		HighestRatedID int     `json:"highestRatedId"`
		HighestRating  float64 `json:"highestRating"`
		MostReviewedID int     `json:"mostReviewedId"`
		MostReviews    int     `json:"mostReviews"`
	} `json:"ratingsOverview"`
	FreeShippingOn  []int         `json:"freeShippingOn"`
	KeyInsights     []string      `json:"keyInsights"`
	Recommendations []ProductPick `json:"recommendations"`
}

var ProductsAISummary = func() ProductAISummary {
	s := ProductAISummary{
		Overview: "Five in-stock wireless audio products span premium over-ear, studio, sport, bass-enhanced earbuds, and kid-safe headphones - offering 10-28% discounts, strong ratings, and fast delivery options.",
		FreeShippingOn: []int{1, 2, 3, 5},
		KeyInsights: []string{
			"Premium models (IDs 1 & 3) command top ratings and feature advanced ANC/Hi-Res audio.",
			"SportFit earbuds (ID 4) drive highest engagement but trail on overall rating.",
			"Average discount of 20% makes mid-range and kid-safe options very affordable.",
			"Free shipping applies to 4 of 5 items, boosting purchase appeal.",
		},
		Recommendations: []ProductPick{
			{UseCase: "Immersive Listening", ID: 3, Name: "AirFlex Studio"},
			{UseCase: "Travel & Commute", ID: 1, Name: "SoundWave Pro"},
			{UseCase: "Workout & Sports", ID: 4, Name: "SportFit"},
			{UseCase: "Budget Bass", ID: 2, Name: "UltraBass"},
			{UseCase: "Kids Safety", ID: 5, Name: "KidSafe"},
		},
	}
	s.PricingInsights.AverageDiscount = "20%"
	s.PricingInsights.MaxDiscountID = 1
	s.PricingInsights.MaxDiscount = "28% off"
	s.PricingInsights.PriceMin = "$49.99"
	s.PricingInsights.PriceMax = "$199.99"
	s.RatingsOverview.AverageRating = 4.58
	s.RatingsOverview.HighestRatedID = 3
	s.RatingsOverview.HighestRating = 4.8
	s.RatingsOverview.MostReviewedID = 4
	s.RatingsOverview.MostReviews = 3542
	return s
}()

var productQuestions = []Question{
	{
		ID:   "product-listing_accuracy",
		Text: "Based on these products, which should you purchase if you need headphones for intense workout sessions that can withstand sweat and rain?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"SoundWave Pro Wireless Headphones",
			"UltraBass Wireless Earbuds",
			"AirFlex Studio Headphones",
			"SportFit Wireless Earbuds",
			"KidSafe Wireless Headphones",
		},
	},
	{
		ID:   "product-listing_comprehension",
		Text: "Which of the following statements are accurate based on the product listings?",
		Type: QuestionMultipleChoice,
		Options: []string{
			"All the headphone products offer some form of discount from their original price",
			"The AirFlex Studio Headphones have the highest customer rating",
			"Free shipping is available for all wireless headphone products",
			"The UltraBass Wireless Earbuds come in multiple color options",
			"The KidSafe headphones feature technology specifically designed for child safety",
			"The SportFit Wireless Earbuds include a heart rate monitoring feature",
		},
		MultipleCorrectAnswers: true,
	},
}
