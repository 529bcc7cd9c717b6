package services

import (
	"fmt"
	"strconv"
	"strings"

	"silktouch/internal/config"
	"silktouch/internal/models"
)

// intentRule answers a query when match reports true for the lowercased text.
type intentRule struct {
	intent   string
	match    func(q string) bool
	response func(store config.StoreConfig) string
}

func containsAny(words ...string) func(string) bool {
	return func(q string) bool {
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}
}

func fixed(text string) func(config.StoreConfig) string {
	return func(config.StoreConfig) string { return text }
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// intentRules is evaluated top to bottom and the first match wins. Matching is
// plain substring containment, so "hi" also matches "shipping".
var intentRules = []intentRule{
	{
		intent: models.IntentGreeting,
		match:  containsAny("hello", "hi", "hey"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("Hello! Welcome to %s, your modern fashion destination in the UAE. How can I help you find the perfect outfit today?", s.Name)
		},
	},
	{
		intent: models.IntentOrderTracking,
		match: func(q string) bool {
			return strings.Contains(q, "order") && (strings.Contains(q, "track") || strings.Contains(q, "status"))
		},
		response: fixed(`To track your order, please go to your account page and check "My Orders". You can also provide your order ID for specific tracking information.`),
	},
	{
		intent:   models.IntentSizingHelp,
		match:    containsAny("size", "sizing", "fit"),
		response: fixed("For sizing help, check our size guide on each product page. We offer XS to XXL sizes. Customer reviews often mention fit details too. Need help with a specific item?"),
	},
	{
		intent: models.IntentReturns,
		match:  containsAny("return", "refund", "exchange"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("We offer a %d-day return policy for unworn items with tags. You can start a return from your order history or contact our support team for assistance.", s.ReturnWindowDays)
		},
	},
	{
		intent: models.IntentShipping,
		match:  containsAny("shipping", "delivery"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("Free shipping on orders over %s %s across the UAE! Standard delivery: %s days to Dubai, Abu Dhabi, Sharjah. Express delivery (%s days) available for extra fee.",
				s.Currency, money(s.FreeShippingThreshold), s.StandardDelivery, s.ExpressDelivery)
		},
	},
	{
		intent:   models.IntentCustomerSupport,
		match:    containsAny("help", "support", "contact"),
		response: fixed("I'm here to help! Ask me about products, sizing, orders, shipping, returns, or browse our categories: Men, Women, Kids. What do you need help with?"),
	},
	{
		intent:   models.IntentProductRecommendation,
		match:    containsAny("recommend", "suggest", "find"),
		response: fixed("I'd love to help you find something! Browse our Men's, Women's, or Kids' collections. Use filters for price, size, and brand. What type of clothing are you looking for?"),
	},
	{
		intent: models.IntentPricingPayment,
		match:  containsAny("price", "cost", "payment"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("Our prices range from %[1]s 39 (kids items) to %[1]s 399 (premium pieces). We accept various payment methods. Use price filters to shop within your budget!", s.Currency)
		},
	},
	{
		intent:   models.IntentProductRecommendation,
		match:    containsAny("trending", "popular", "new", "featured"),
		response: fixed("Check our featured products! Popular items: Winter Wool Sweaters (men), Elegant Evening Dresses (women), Kids Formal Suits. Visit homepage for trending items!"),
	},
	{
		intent: models.IntentProductRecommendation,
		match:  containsAny("men", "male"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("Our men's collection includes shirts, jeans, blazers, t-shirts, polos, and sweaters. Prices from %s 49-399. Popular: Classic White Shirts and Business Blazers!", s.Currency)
		},
	},
	{
		intent: models.IntentProductRecommendation,
		match:  containsAny("women", "female", "ladies"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("Our women's collection features dresses, blouses, jeans, sweaters, blazers, and accessories. From %s 79-299. Trending: Evening Dresses and Summer Blouses!", s.Currency)
		},
	},
	{
		intent: models.IntentProductRecommendation,
		match:  containsAny("kids", "children", "child"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("Kids collection: t-shirts, polos, jackets, dresses, shorts, hoodies, and formal wear. Prices %s 39-189. Popular: Colorful T-Shirts and Formal Suit Sets!", s.Currency)
		},
	},
	{
		intent: models.IntentProductRecommendation,
		match:  containsAny("dress"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("We have beautiful dresses! Elegant Evening Dresses (%[1]s 299), Floral Maxi Dresses (%[1]s 169), and Kids Playtime Dresses (%[1]s 69). Perfect for any occasion!", s.Currency)
		},
	},
	{
		intent: models.IntentProductRecommendation,
		match:  containsAny("shirt"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("Great shirt selection! Classic White Shirts (%[1]s 129), Summer Blouses (%[1]s 89), and Kids Colorful T-Shirts (%[1]s 39). Professional and casual options available!", s.Currency)
		},
	},
	{
		intent: models.IntentProductRecommendation,
		match:  containsAny("winter", "warm", "cold"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("Winter essentials: Men's Wool Sweaters (%[1]s 219), Women's Knit Sweaters (%[1]s 149), Kids Hoodies (%[1]s 89). Stay warm and stylish!", s.Currency)
		},
	},
	{
		intent: models.IntentProductRecommendation,
		match:  containsAny("formal", "business", "office"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("Formal wear: Business Blazers (%[1]s 259-399), Classic Shirts (%[1]s 129), Professional Blazers for women, Kids Formal Suits (%[1]s 189). Perfect for work!", s.Currency)
		},
	},
	{
		intent: models.IntentProductRecommendation,
		match:  containsAny("casual", "everyday"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("Casual comfort: Denim Jeans (%[1]s 179-199), Cotton T-Shirts (%[1]s 49), Summer Blouses (%[1]s 89), Sports Shorts (%[1]s 45). Perfect for daily wear!", s.Currency)
		},
	},
	{
		intent: models.IntentGratitude,
		match:  containsAny("thank"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("You're welcome! Happy to help with your %s shopping. Feel free to ask if you need anything else. Enjoy your shopping experience!", s.Name)
		},
	},
	{
		intent: models.IntentFarewell,
		match:  containsAny("bye", "goodbye"),
		response: func(s config.StoreConfig) string {
			return fmt.Sprintf("Goodbye! Thanks for visiting %s. Come back anytime for the latest fashion trends. Have a wonderful day!", s.Name)
		},
	},
}

func generalResponse(s config.StoreConfig) string {
	return fmt.Sprintf("Hello! I'm the %s AI assistant. I can help you find products, answer questions about sizing, shipping, returns, or provide recommendations. What can I help you with today?", s.Name)
}

// classify returns the intent and canned answer for a query.
func classify(store config.StoreConfig, query string) (intent, response string) {
	q := strings.ToLower(query)
	for _, rule := range intentRules {
		if rule.match(q) {
			return rule.intent, rule.response(store)
		}
	}
	return models.IntentGeneral, generalResponse(store)
}
