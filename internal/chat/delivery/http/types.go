package http

import (
	"conversation-intent-toolkit/internal/chat"
	"conversation-intent-toolkit/internal/model"
)

type processQueryReq struct {
	Query          string `json:"query"`
	ConversationID string `json:"conversation_id"`
}

type travelObj struct {
	Location      string `json:"location,omitempty"`
	SearchType    string `json:"search_type"`
	EnhancedQuery string `json:"enhanced_query"`
}

type processQueryResp struct {
	Result       string     `json:"result"`
	CalendarFile string     `json:"calendar_file,omitempty"`
	Travel       *travelObj `json:"travel,omitempty"`
}

func newProcessQueryResp(out chat.ProcessOutput) processQueryResp {
	resp := processQueryResp{
		Result:       out.Reply,
		CalendarFile: out.CalendarFile,
	}
	if out.Travel != nil {
		resp.Travel = &travelObj{
			Location:      out.Travel.Location,
			SearchType:    string(out.Travel.SearchType),
			EnhancedQuery: out.Travel.EnhancedQuery,
		}
	}
	return resp
}

func (req processQueryReq) toScope() model.Scope {
	conversationID := req.ConversationID
	if conversationID == "" {
		// Single-conversation clients can omit the id and still get a
		// stable runner session.
		conversationID = "default"
	}
	return model.Scope{ConversationID: conversationID}
}
