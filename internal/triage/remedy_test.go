package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightMedicine_FirstTableEntryWins(t *testing.T) {
	got, ok := LightMedicine("I have a headache and a cold")
	require.True(t, ok)
	assert.Equal(t, "Consider taking Tylenol (acetaminophen) or Advil (ibuprofen) for relief.", got)

	// order in the message does not matter, only table order
	got, ok = LightMedicine("a cold and now a headache")
	require.True(t, ok)
	assert.Equal(t, "Consider taking Tylenol (acetaminophen) or Advil (ibuprofen) for relief.", got)
}

func TestLightMedicine_CaseInsensitive(t *testing.T) {
	got, ok := LightMedicine("ALLERGY season again")
	require.True(t, ok)
	assert.Equal(t, "Antihistamines like Claritin or Zyrtec can help relieve allergy symptoms.", got)
}

func TestLightMedicine_SoreThroatLosesToCough(t *testing.T) {
	got, ok := LightMedicine("sore throat with a cough")
	require.True(t, ok)
	assert.Equal(t, "Robitussin or Delsym can help soothe your cough.", got)

	got, ok = LightMedicine("just a sore throat")
	require.True(t, ok)
	assert.Equal(t, "Throat lozenges like Halls or cough syrups like Cepacol can provide relief.", got)
}

func TestLightMedicine_NoMatch(t *testing.T) {
	got, ok := LightMedicine("my knee hurts")
	assert.False(t, ok)
	assert.Empty(t, got)

	_, ok = LightMedicine("")
	assert.False(t, ok)
}

func TestLightMedicine_Deterministic(t *testing.T) {
	first, _ := LightMedicine("fever, nausea and fatigue")
	for i := 0; i < 50; i++ {
		again, _ := LightMedicine("fever, nausea and fatigue")
		require.Equal(t, first, again)
	}
}

func TestWithLightMedicine(t *testing.T) {
	assert.Equal(t,
		"Try resting.\n\nLight Medicines:\nConsider taking Tylenol (acetaminophen) or Advil (ibuprofen) for relief.",
		WithLightMedicine("Try resting.", "I have a headache"))
	assert.Equal(t, "Try resting.", WithLightMedicine("Try resting.", "my back is in pain"))
}
