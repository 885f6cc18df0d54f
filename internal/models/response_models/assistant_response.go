package response_models

// AssistantReplyKind is the tagged-union discriminator for assistant replies.
type AssistantReplyKind string

const (
	ReplyKindText     AssistantReplyKind = "text"
	ReplyKindTripCard AssistantReplyKind = "trip_card"
)

type AssistantReply struct {
	Kind AssistantReplyKind `json:"kind"`
	Text string             `json:"text"`
	// Trip is only present when Kind is "trip_card".
	Trip *TripResponse `json:"trip,omitempty"`
}
