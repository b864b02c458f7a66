package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Draft
	}{
		{
			name: "model reply",
			text: "name: John\nsurname: Doe\ncar_number: AB-1234\nperiod_start: 2025-02-22 09:00\nperiod_end: 2025-02-22 17:00",
			want: domain.Draft{
				Name:        "John",
				Surname:     "Doe",
				CarNumber:   "AB-1234",
				PeriodStart: "2025-02-22 09:00",
				PeriodEnd:   "2025-02-22 17:00",
			},
		},
		{
			name: "semicolons and aliases",
			text: "Name: John; Last name: Doe; Car Number: AB-1234; From: 2025-02-22 09:00; Until: 2025-02-22 17:00",
			want: domain.Draft{
				Name:        "John",
				Surname:     "Doe",
				CarNumber:   "AB-1234",
				PeriodStart: "2025-02-22 09:00",
				PeriodEnd:   "2025-02-22 17:00",
			},
		},
		{
			name: "empty values skipped",
			text: "- name: John\n- surname:\n- car_number: ...\nphone: 123",
			want: domain.Draft{Name: "John"},
		},
		{
			name: "free text",
			text: "When are you open on Sunday?",
			want: domain.Draft{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFields(tt.text))
		})
	}
}

type fakeCompleter struct {
	reply string
	err   error
	user  string
}

func (f *fakeCompleter) Complete(_ context.Context, _, user string) (string, error) {
	f.user = user
	return f.reply, f.err
}

func TestLLMExtractor_Extract(t *testing.T) {
	llm := &fakeCompleter{reply: "name: John\nsurname: Doe\ncar_number: AB-1234\nperiod_start: 2025-02-22 09:00\nperiod_end: 2025-02-22 17:00\n"}

	draft, err := NewLLMExtractor(llm, logger.Nop()).Extract(context.Background(), "I am John Doe, car AB-1234, tomorrow 9 to 17")
	require.NoError(t, err)
	assert.True(t, draft.IsComplete())
	assert.Contains(t, llm.user, "I am John Doe, car AB-1234")
	assert.Contains(t, llm.user, "period_start: ...")
}

func TestLLMExtractor_Error(t *testing.T) {
	llm := &fakeCompleter{err: errors.New("boom")}

	draft, err := NewLLMExtractor(llm, logger.Nop()).Extract(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrExtraction)
	assert.Equal(t, domain.Draft{}, draft)
}

func TestFieldsExtractor_Extract(t *testing.T) {
	draft, err := NewFieldsExtractor().Extract(context.Background(), "name: John; surname: Doe")
	require.NoError(t, err)
	assert.Equal(t, []string{domain.FieldCarNumber, domain.FieldPeriodStart, domain.FieldPeriodEnd}, draft.MissingFields())
}
