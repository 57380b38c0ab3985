package chat

import "time"

// Messages shown to the customer about an escalation.
const (
	MessageAwaitingAgent = "Your request is being escalated to a human specialist. Please wait, the usual wait is 2-5 minutes."
	MessageEscalated     = "You've been connected to a human agent who will assist you shortly."
	MessageDeclined      = "A human agent could not take this conversation, continuing with automated assistance."
	MessageFailed        = "Unable to connect to human agent at this time. We'll continue with AI assistance."

	MessageStillWaiting     = "You're already waiting for a human specialist, they'll join as soon as one is free. Reply \"no\" to continue with automated assistance instead."
	MessageCustomerDeclined = "No problem, I'll keep helping you here. Just ask if you'd like a human specialist later."
)

const (
	DefaultSessionTTL  = 30 * time.Minute
	DefaultMaxSessions = 10000
	DefaultChannel     = "api"
)
