package seed

import "silktouch/internal/models"

type demoUser struct {
	user     models.User
	password string
}

var demoUsers = []demoUser{
	{
		user: models.User{
			Name:    "Ahmed Admin",
			Email:   "admin@silktouch.com",
			Role:    models.RoleAdmin,
			Phone:   "+971501234567",
			Address: models.Address{Street: "123 Admin Street", City: "Dubai", PostalCode: "12345", Country: "UAE"},
		},
		password: "admin123",
	},
	{
		user: models.User{
			Name:    "Sarah Johnson",
			Email:   "sarah@example.com",
			Role:    models.RoleUser,
			Phone:   "+971507654321",
			Address: models.Address{Street: "456 User Avenue", City: "Abu Dhabi", PostalCode: "54321", Country: "UAE"},
		},
		password: "user123",
	},
	{
		user: models.User{
			Name:    "Mohammed Al Rashid",
			Email:   "mohammed@example.com",
			Role:    models.RoleUser,
			Phone:   "+971501111111",
			Address: models.Address{Street: "789 Fashion Boulevard", City: "Sharjah", PostalCode: "11111", Country: "UAE"},
		},
		password: "user123",
	},
}

// demoProducts is the starter catalog: six men's, seven women's and seven kids' items.
func demoProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Classic White Shirt",
			Description: "Premium cotton dress shirt perfect for office or formal occasions. Comfortable fit with modern styling and excellent durability.",
			Price:       129,
			Category:    models.CategoryMen,
			Subcategory: "shirts",
			Brand:       "Silk Touch Premium",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Light Blue"},
			Images:      []string{"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400&h=600&fit=crop&crop=center", "https://images.unsplash.com/photo-1564859228273-274232fdb516?w=400&h=600&fit=crop&crop=center"},
			Stock:       50,
			Featured:    true,
			Tags:        []string{"formal", "cotton", "office", "classic"},
			Rating:      4.5,
		},
		{
			Name:        "Casual Denim Jeans",
			Description: "Comfortable straight-fit jeans made from high-quality denim. Perfect for everyday wear with excellent durability.",
			Price:       199,
			Category:    models.CategoryMen,
			Subcategory: "jeans",
			Brand:       "Urban Style",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Dark Blue", "Light Blue", "Black"},
			Images:      []string{"https://images.unsplash.com/photo-1542272604-787c3835535d?w=400&h=600&fit=crop&crop=center"},
			Stock:       75,
			Featured:    true,
			Tags:        []string{"casual", "denim", "comfortable", "everyday"},
			Rating:      4.3,
		},
		{
			Name:        "Business Blazer",
			Description: "Elegant blazer for professional settings. Tailored fit with attention to detail.",
			Price:       399,
			Category:    models.CategoryMen,
			Subcategory: "blazers",
			Brand:       "Executive",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Navy", "Charcoal", "Black"},
			Images:      []string{"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=600&fit=crop&crop=center"},
			Stock:       30,
			Featured:    false,
			Tags:        []string{"formal", "business", "professional", "tailored"},
			Rating:      4.7,
		},
		{
			Name:        "Cotton T-Shirt",
			Description: "Soft cotton t-shirt for casual wear. Available in multiple colors and sizes.",
			Price:       49,
			Category:    models.CategoryMen,
			Subcategory: "tshirts",
			Brand:       "Comfort Zone",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"White", "Black", "Gray", "Navy", "Red"},
			Images:      []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=600&fit=crop&crop=center"},
			Stock:       100,
			Featured:    false,
			Tags:        []string{"casual", "cotton", "basic", "comfortable"},
			Rating:      4.2,
		},
		{
			Name:        "Sports Performance Polo",
			Description: "Moisture-wicking polo shirt perfect for active lifestyle and sports activities.",
			Price:       89,
			Category:    models.CategoryMen,
			Subcategory: "polos",
			Brand:       "Active Wear",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Navy", "Red", "Gray"},
			Images:      []string{"https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=400&h=600&fit=crop&crop=center"},
			Stock:       65,
			Featured:    false,
			Tags:        []string{"sports", "active", "moisture-wicking", "polo"},
			Rating:      4.4,
		},
		{
			Name:        "Winter Wool Sweater",
			Description: "Premium wool sweater for cold weather. Classic V-neck design with superior warmth.",
			Price:       219,
			Category:    models.CategoryMen,
			Subcategory: "sweaters",
			Brand:       "Winter Collection",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Navy", "Gray", "Burgundy", "Black"},
			Images:      []string{"https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=400&h=600&fit=crop&crop=center"},
			Stock:       35,
			Featured:    true,
			Tags:        []string{"winter", "wool", "warm", "classic"},
			Rating:      4.6,
		},
		{
			Name:        "Elegant Evening Dress",
			Description: "Stunning evening dress perfect for special occasions. Flattering silhouette with premium fabric.",
			Price:       299,
			Category:    models.CategoryWomen,
			Subcategory: "dresses",
			Brand:       "Glamour",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Black", "Navy", "Burgundy"},
			Images:      []string{"https://images.unsplash.com/photo-1566479179817-fb77d2a4b8c9?w=400&h=600&fit=crop&crop=center"},
			Stock:       25,
			Featured:    true,
			Tags:        []string{"formal", "evening", "elegant", "special occasion"},
			Rating:      4.8,
		},
		{
			Name:        "Casual Summer Blouse",
			Description: "Light and airy blouse perfect for summer days. Comfortable and stylish for everyday wear.",
			Price:       89,
			Category:    models.CategoryWomen,
			Subcategory: "blouses",
			Brand:       "Summer Breeze",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"White", "Pink", "Yellow", "Light Blue"},
			Images:      []string{"https://images.unsplash.com/photo-1485462537415-ac24221ce21d?w=400&h=600&fit=crop&crop=center"},
			Stock:       60,
			Featured:    true,
			Tags:        []string{"casual", "summer", "lightweight", "comfortable"},
			Rating:      4.4,
		},
		{
			Name:        "High-Waisted Jeans",
			Description: "Trendy high-waisted jeans with a flattering fit. Made from stretch denim for comfort.",
			Price:       179,
			Category:    models.CategoryWomen,
			Subcategory: "jeans",
			Brand:       "Trendy Fit",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Dark Blue", "Light Blue", "Black"},
			Images:      []string{"https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=400&h=600&fit=crop&crop=center"},
			Stock:       80,
			Featured:    false,
			Tags:        []string{"trendy", "high-waisted", "stretch", "denim"},
			Rating:      4.6,
		},
		{
			Name:        "Floral Maxi Dress",
			Description: "Beautiful floral print maxi dress perfect for summer occasions and casual events.",
			Price:       169,
			Category:    models.CategoryWomen,
			Subcategory: "dresses",
			Brand:       "Floral Dreams",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Blue Floral", "Pink Floral", "White Floral"},
			Images:      []string{"https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=400&h=600&fit=crop&crop=center"},
			Stock:       35,
			Featured:    true,
			Tags:        []string{"floral", "maxi", "summer", "casual"},
			Rating:      4.5,
		},
		{
			Name:        "Knit Sweater",
			Description: "Cozy knit sweater perfect for cooler weather. Soft and warm with a classic design.",
			Price:       149,
			Category:    models.CategoryWomen,
			Subcategory: "sweaters",
			Brand:       "Cozy Knits",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Beige", "Gray", "Pink", "Navy"},
			Images:      []string{"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=400&h=600&fit=crop&crop=center"},
			Stock:       45,
			Featured:    false,
			Tags:        []string{"cozy", "knit", "warm", "classic"},
			Rating:      4.3,
		},
		{
			Name:        "Professional Blazer",
			Description: "Sophisticated blazer designed for the modern professional woman. Perfect for office wear.",
			Price:       259,
			Category:    models.CategoryWomen,
			Subcategory: "blazers",
			Brand:       "Career Woman",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Black", "Navy", "Gray", "Burgundy"},
			Images:      []string{"https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400&h=600&fit=crop&crop=center"},
			Stock:       40,
			Featured:    false,
			Tags:        []string{"professional", "office", "formal", "sophisticated"},
			Rating:      4.7,
		},
		{
			Name:        "Silk Scarf Collection",
			Description: "Premium silk scarves in various designs. Perfect accessory for any outfit.",
			Price:       79,
			Category:    models.CategoryWomen,
			Subcategory: "accessories",
			Brand:       "Silk Elegance",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Floral Print", "Abstract Print", "Solid Navy", "Solid Red"},
			Images:      []string{"https://images.unsplash.com/photo-1617038220319-276d3cfab638?w=400&h=600&fit=crop&crop=center"},
			Stock:       50,
			Featured:    false,
			Tags:        []string{"silk", "accessory", "elegant", "versatile"},
			Rating:      4.2,
		},
		{
			Name:        "Kids Colorful T-Shirt",
			Description: "Fun and colorful t-shirt for active kids. Made from soft, breathable cotton.",
			Price:       39,
			Category:    models.CategoryKids,
			Subcategory: "tshirts",
			Brand:       "Little Ones",
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Rainbow", "Blue", "Pink", "Green"},
			Images:      []string{"https://images.unsplash.com/photo-1519578922761-228e1b73de71?w=400&h=600&fit=crop&crop=center"},
			Stock:       90,
			Featured:    true,
			Tags:        []string{"kids", "colorful", "cotton", "playful"},
			Rating:      4.5,
		},
		{
			Name:        "School Uniform Polo",
			Description: "Classic polo shirt suitable for school uniforms. Durable and comfortable for daily wear.",
			Price:       59,
			Category:    models.CategoryKids,
			Subcategory: "polos",
			Brand:       "School Style",
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Navy", "White", "Light Blue"},
			Images:      []string{"https://images.unsplash.com/photo-1503944583220-79d8926ad5e2?w=400&h=600&fit=crop&crop=center"},
			Stock:       70,
			Featured:    false,
			Tags:        []string{"school", "uniform", "polo", "durable"},
			Rating:      4.1,
		},
		{
			Name:        "Kids Denim Jacket",
			Description: "Stylish denim jacket for kids. Perfect layering piece for any outfit.",
			Price:       99,
			Category:    models.CategoryKids,
			Subcategory: "jackets",
			Brand:       "Junior Fashion",
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Light Blue", "Dark Blue"},
			Images:      []string{"https://images.unsplash.com/photo-1503944583220-79d8926ad5e2?w=400&h=600&fit=crop&crop=center"},
			Stock:       40,
			Featured:    false,
			Tags:        []string{"kids", "denim", "jacket", "layering"},
			Rating:      4.4,
		},
		{
			Name:        "Playtime Dress",
			Description: "Comfortable dress for girls, perfect for playtime and casual occasions.",
			Price:       69,
			Category:    models.CategoryKids,
			Subcategory: "dresses",
			Brand:       "Play & Fun",
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Pink", "Purple", "Yellow"},
			Images:      []string{"https://images.unsplash.com/photo-1518396745084-d0d9e34c7e8a?w=400&h=600&fit=crop&crop=center"},
			Stock:       55,
			Featured:    true,
			Tags:        []string{"kids", "dress", "playtime", "comfortable"},
			Rating:      4.6,
		},
		{
			Name:        "Kids Sports Shorts",
			Description: "Comfortable athletic shorts for active kids. Perfect for sports and outdoor activities.",
			Price:       45,
			Category:    models.CategoryKids,
			Subcategory: "shorts",
			Brand:       "Active Kids",
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Blue", "Red", "Black", "Green"},
			Images:      []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=600&fit=crop&crop=center"},
			Stock:       80,
			Featured:    false,
			Tags:        []string{"kids", "sports", "active", "shorts"},
			Rating:      4.3,
		},
		{
			Name:        "Winter Kids Hoodie",
			Description: "Warm and cozy hoodie for kids. Soft fleece lining for extra comfort during cold weather.",
			Price:       89,
			Category:    models.CategoryKids,
			Subcategory: "hoodies",
			Brand:       "Cozy Kids",
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Gray", "Navy", "Pink", "Red"},
			Images:      []string{"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=600&fit=crop&crop=center"},
			Stock:       60,
			Featured:    false,
			Tags:        []string{"kids", "winter", "hoodie", "warm"},
			Rating:      4.4,
		},
		{
			Name:        "Kids Formal Suit Set",
			Description: "Complete formal suit set for special occasions. Includes jacket, pants, and shirt.",
			Price:       189,
			Category:    models.CategoryKids,
			Subcategory: "formal",
			Brand:       "Little Gentleman",
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"Navy", "Black", "Gray"},
			Images:      []string{"https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=400&h=600&fit=crop&crop=center"},
			Stock:       25,
			Featured:    true,
			Tags:        []string{"kids", "formal", "suit", "special occasion"},
			Rating:      4.7,
		},
	}
}
