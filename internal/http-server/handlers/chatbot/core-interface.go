package chatbot

import "FurnishDesk/entity"

type Core interface {
	ResolveIntent(query entity.ChatQuery) entity.ChatReply
}
