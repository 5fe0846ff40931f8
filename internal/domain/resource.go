package domain

// ResourceKind is how a support resource is reached.
type ResourceKind string

const (
	ResourceCall  ResourceKind = "call"
	ResourceText  ResourceKind = "text"
	ResourceLocal ResourceKind = "local"
)

// SupportResource is an entry of the static crisis and help list. The
// companion never contacts anyone itself; clients dial or text Contact.
type SupportResource struct {
	Key         string       `json:"key"`
	Kind        ResourceKind `json:"kind"`
	Title       string       `json:"title"`
	Contact     string       `json:"contact,omitempty"`
	Description string       `json:"description"`
}

var supportResources = []SupportResource{
	{
		Key:         "crisis-lifeline",
		Kind:        ResourceCall,
		Title:       "Suicide & Crisis Lifeline",
		Contact:     "988",
		Description: "Free, confidential support 24/7 from a trained counselor.",
	},
	{
		Key:         "emergency",
		Kind:        ResourceCall,
		Title:       "Emergency Services",
		Contact:     "911",
		Description: "Call if you or someone else is in immediate danger.",
	},
	{
		Key:         "crisis-text",
		Kind:        ResourceText,
		Title:       "Crisis Text Line",
		Contact:     "Text HOME to 741741",
		Description: "Connect with a trained crisis counselor by text message.",
	},
	{
		Key:         "local-help",
		Kind:        ResourceLocal,
		Title:       "Find Local Help",
		Description: "Mental health resources and support services in your area.",
	},
}

// SupportResources returns a copy of the crisis and help list in display order.
func SupportResources() []SupportResource {
	return append([]SupportResource(nil), supportResources...)
}
