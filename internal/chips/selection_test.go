package chips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChips() []Chip {
	return []Chip{
		{ID: "dev", Label: "Developers", Value: "Developer"},
		{ID: "design", Label: "Designers", Value: "Designer"},
		{ID: "react", Label: "React", Value: "React"},
		{ID: "legacy", Label: "Legacy", Value: "Legacy", Disabled: true},
	}
}

func TestSelection_MultiSelectToggle(t *testing.T) {
	s := NewSelection(MultiSelect, sampleChips())

	require.NoError(t, s.Toggle("dev"))
	require.NoError(t, s.Toggle("react"))
	assert.Equal(t, []string{"dev", "react"}, s.Active())

	require.NoError(t, s.Toggle("dev"))
	assert.Equal(t, []string{"react"}, s.Active())
	assert.False(t, s.IsActive("dev"))
	assert.True(t, s.IsActive("react"))
}

func TestSelection_SingleSelectReplaces(t *testing.T) {
	s := NewSelection(SingleSelect, sampleChips())

	require.NoError(t, s.Toggle("dev"))
	assert.Equal(t, []string{"dev"}, s.Active())

	require.NoError(t, s.Toggle("design"))
	assert.Equal(t, []string{"design"}, s.Active())
}

func TestSelection_SingleSelectReclickDeselects(t *testing.T) {
	s := NewSelection(SingleSelect, sampleChips())

	require.NoError(t, s.Toggle("dev"))
	require.NoError(t, s.Toggle("dev"))
	assert.Empty(t, s.Active())
	assert.Equal(t, 0, s.Len())
}

func TestSelection_SingleSelectExclusivity(t *testing.T) {
	s := NewSelection(SingleSelect, sampleChips())
	for _, id := range []string{"dev", "design", "design", "react", "dev", "react", "react", "dev"} {
		require.NoError(t, s.Toggle(id))
		assert.LessOrEqual(t, s.Len(), 1, "after toggling %s", id)
	}
}

func TestSelection_Clear(t *testing.T) {
	for _, policy := range []Policy{SingleSelect, MultiSelect} {
		t.Run(policy.String(), func(t *testing.T) {
			s := NewSelection(policy, sampleChips())
			require.NoError(t, s.Toggle("dev"))
			require.NoError(t, s.Toggle("react"))
			s.Clear()
			assert.Empty(t, s.Active())
		})
	}
}

func TestSelection_DisabledIgnored(t *testing.T) {
	s := NewSelection(MultiSelect, sampleChips())
	err := s.Toggle("legacy")
	assert.ErrorIs(t, err, ErrChipDisabled)
	assert.Empty(t, s.Active())
}

func TestSelection_UnknownRejected(t *testing.T) {
	s := NewSelection(MultiSelect, sampleChips())
	err := s.Toggle("ghost")
	assert.ErrorIs(t, err, ErrUnknownChip)
	assert.False(t, s.IsActive("ghost"))
}

func TestSelection_InitialActiveFlags(t *testing.T) {
	chips := []Chip{
		{ID: "a", Active: true},
		{ID: "b"},
		{ID: "c", Active: true},
	}

	multi := NewSelection(MultiSelect, chips)
	assert.Equal(t, []string{"a", "c"}, multi.Active())

	single := NewSelection(SingleSelect, chips)
	assert.Equal(t, []string{"c"}, single.Active())
}

func TestSelection_ActiveReturnsCopy(t *testing.T) {
	s := NewSelection(MultiSelect, sampleChips())
	require.NoError(t, s.Toggle("dev"))
	got := s.Active()
	got[0] = "mutated"
	assert.Equal(t, []string{"dev"}, s.Active())
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "single", SingleSelect.String())
	assert.Equal(t, "multi", MultiSelect.String())
	assert.Equal(t, "Policy(7)", Policy(7).String())
}
