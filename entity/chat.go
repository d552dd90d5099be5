package entity

// ChatQuery is one free-text question from the website chat widget. An empty
// message is a valid query; it resolves to the fallback reply.
type ChatQuery struct {
	Message string `json:"message"`
}

// ChatReply carries the canned reply resolved for a query.
type ChatReply struct {
	Reply string `json:"reply"`
}
