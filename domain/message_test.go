package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"whisper-hub/errors"
)

func TestValidateIdentities(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		cmd     SendCommand
		wantErr error
	}{
		{"Valid", SendCommand{From: "alice", To: "bob", Body: "hi"}, nil},
		{"Self message allowed", SendCommand{From: "alice", To: "alice", Body: "note"}, nil},
		{"Empty sender", SendCommand{From: "", To: "bob"}, errors.ErrEmptyIdentity},
		{"Blank recipient", SendCommand{From: "alice", To: "  "}, errors.ErrEmptyIdentity},
		{"Separator in sender", SendCommand{From: "alice:evil", To: "bob"}, errors.ErrInvalidIdentity},
		{"Separator in recipient", SendCommand{From: "alice", To: "bob:x"}, errors.ErrInvalidIdentity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr == nil {
				req.NoError(err)
			} else {
				req.ErrorIs(err, tt.wantErr)
			}
		})
	}
}

func TestPairKeyIsDirectionless(t *testing.T) {
	req := require.New(t)
	req.Equal(PairKey("alice", "bob"), PairKey("bob", "alice"))
	req.Equal("alice:bob", PairKey("bob", "alice"))
}
