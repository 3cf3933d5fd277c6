package textlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegments(t *testing.T) {
	text := "Steve Jobs lived in California."
	res := &AnalysisResult{
		Text: text,
		Entities: []EntityTag{
			{Word: "Steve Jobs", Entity: PersonEntity, Start: 0, End: 10},
			{Word: "California", Entity: LocationEntity, Start: 20, End: 30},
		},
	}

	assert.Equal(t, []Segment{
		{Text: "Steve Jobs", Start: 0, End: 10, Entity: PersonEntity},
		{Text: " lived in ", Start: 10, End: 20},
		{Text: "California", Start: 20, End: 30, Entity: LocationEntity},
		{Text: ".", Start: 30, End: 31},
	}, res.Segments())
}

func TestSegmentsWithoutEntities(t *testing.T) {
	res := &AnalysisResult{Text: "plain text"}
	assert.Equal(t, []Segment{{Text: "plain text", Start: 0, End: 10}}, res.Segments())

	assert.Empty(t, (&AnalysisResult{}).Segments())
}

func TestStageError(t *testing.T) {
	err := stageError(StageTag, ErrInternalFailure)
	assert.Equal(t, "tag: textlens: internal failure", err.Error())
	assert.ErrorIs(t, err, ErrInternalFailure)
}
