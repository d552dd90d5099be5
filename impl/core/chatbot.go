package core

import (
	"FurnishDesk/entity"
	"strings"
)

// intentRule maps a set of trigger substrings to one canned reply.
type intentRule struct {
	triggers []string
	reply    string
}

// intentRules is evaluated top to bottom and the first match wins, so earlier
// rules pre-empt later ones when triggers overlap. Do not reorder.
var intentRules = []intentRule{
	{
		triggers: []string{"time", "timing", "open", "closing", "hours"},
		reply:    "We are open every day from 10:00 AM to 10:00 PM. Same-day delivery is available.",
	},
	{
		triggers: []string{"address", "location", "where", "map", "reach"},
		reply:    "Shop No. 12, Sunrise Arcade, Station Road, Bhayandar East, Thane, Maharashtra 401105. Search 'Deluxe Foam & Furnishings' on Google Maps for directions.",
	},
	{
		triggers: []string{"deliver", "delivery", "same day", "home delivery"},
		reply:    "Yes, we offer same-day delivery across Bhayandar, Mira Road, and Dahisar.",
	},
	{
		triggers: []string{"price", "cost", "rate", "charges"},
		reply:    "Prices vary by product and customization. Share what you need (mattress size, curtain fabric, sofa design) and we'll give you the best quote.",
	},
	{
		triggers: []string{"mattress", "curtain", "sofa", "wallpaper", "carpet", "blinds", "pillow", "cushion", "grass", "floor", "rug"},
		reply:    "We stock premium mattresses, curtains, wallpapers, carpets, PVC flooring, window blinds, sofa making & repair, pillows, cushions and more. Tell me what you're looking for.",
	},
	{
		triggers: []string{"contact", "phone", "call", "whatsapp"},
		reply:    "You can call us at 090000 00000 or email shop@furnishdesk.local. We're happy to help!",
	},
	{
		triggers: []string{"instagram", "photo", "gallery"},
		reply:    "Check our latest updates and photos on Instagram: @deluxe_furnishings",
	},
	{
		triggers: []string{"hello", "hi", "hey"},
		reply:    "Hi! I'm your assistant for Deluxe Foam & Furnishings. Ask me about products, timings, delivery, or pricing.",
	},
}

// fallbackReply is returned when no rule matches.
const fallbackReply = "I didn't catch that. Ask me about products, prices, timings, delivery, or our location."

// ResolveIntent maps a free-text question to a canned reply. Matching is
// plain substring containment over the lowercased, trimmed input; no
// tokenizing, no stemming.
func (c *Core) ResolveIntent(query entity.ChatQuery) entity.ChatReply {
	text := strings.ToLower(strings.TrimSpace(query.Message))

	for _, rule := range intentRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(text, trigger) {
				return entity.ChatReply{Reply: rule.reply}
			}
		}
	}

	return entity.ChatReply{Reply: fallbackReply}
}
