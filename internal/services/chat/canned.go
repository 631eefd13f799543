// File: internal/services/chat/canned.go
package chat

import "strings"

// FallbackReply is returned when the model responds without any text.
const FallbackReply = "I'm sorry, I couldn't generate a response. Please try again."

// CannedResponse is a fixed reply triggered by a keyword substring.
type CannedResponse struct {
	Trigger string
	Reply   string
}

// DefaultCannedResponses returns the built-in medical advice table. Slice
// order is lookup order: the first trigger contained in the lowercased input
// wins, so "fever" beats "headache" in "I have a fever and headache".
func DefaultCannedResponses() []CannedResponse {
	return []CannedResponse{
		{
			Trigger: "first aid",
			Reply:   "First aid includes basic medical help provided to a person before professional help arrives. For example, if someone is bleeding, applying pressure on the wound can help stop the bleeding. Always call emergency services if the situation is severe.",
		},
		{
			Trigger: "fever",
			Reply:   "A fever is a body temperature higher than 100.4°F (38°C). It's usually caused by infections like the flu, cold, or even COVID-19. Rest, hydration, and fever-reducing medication like acetaminophen can help manage symptoms.",
		},
		{
			Trigger: "headache",
			Reply:   "Headaches can be caused by many factors like dehydration, stress, lack of sleep, or other medical conditions. Over-the-counter medications like ibuprofen or aspirin can help relieve mild headaches. Seek medical help if headaches are severe or persistent.",
		},
		{
			Trigger: "chest pain",
			Reply:   "Chest pain could be a sign of something serious like a heart attack. It's important to seek immediate medical help if you experience chest pain, especially if it's accompanied by shortness of breath, dizziness, or pain radiating to the arm or jaw.",
		},
		{
			Trigger: "covid symptoms",
			Reply:   "COVID-19 symptoms can include fever, cough, shortness of breath, fatigue, and loss of taste or smell. If you suspect you have COVID-19, get tested and follow local health guidelines.",
		},
	}
}

// Lookup scans the table in declared order and returns the first reply whose
// trigger is a substring of the lowercased text.
func Lookup(responses []CannedResponse, text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, cr := range responses {
		if strings.Contains(lowered, cr.Trigger) {
			return cr.Reply, true
		}
	}
	return "", false
}
