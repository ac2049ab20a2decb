package triage

import "strings"

// LightMedicineHeading separates the model reply from the remedy advisory.
const LightMedicineHeading = "\n\nLight Medicines:\n"

type remedy struct {
	symptom  string
	advisory string
}

// Order matters: the first symptom found in the message wins.
var remedies = []remedy{
	{"headache", "Consider taking Tylenol (acetaminophen) or Advil (ibuprofen) for relief."},
	{"fever", "You might try taking Tylenol (acetaminophen) to help reduce your fever."},
	{"cough", "Robitussin or Delsym can help soothe your cough."},
	{"cold", "Over-the-counter medications like Sudafed or NyQuil can alleviate cold symptoms."},
	{"sore throat", "Throat lozenges like Halls or cough syrups like Cepacol can provide relief."},
	{"nausea", "Ginger ale or Dramamine can help settle your stomach."},
	{"fatigue", "Consider taking a multivitamin or energy supplements like B12."},
	{"dizziness", "Meclizine (Antivert) can help with dizziness and motion sickness."},
	{"allergy", "Antihistamines like Claritin or Zyrtec can help relieve allergy symptoms."},
}

// LightMedicine returns the advisory for the first known symptom mentioned in text.
func LightMedicine(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, r := range remedies {
		if strings.Contains(lower, r.symptom) {
			return r.advisory, true
		}
	}
	return "", false
}

// WithLightMedicine appends the matching advisory, if any, to reply.
func WithLightMedicine(reply, text string) string {
	advisory, ok := LightMedicine(text)
	if !ok {
		return reply
	}
	return reply + LightMedicineHeading + advisory
}
