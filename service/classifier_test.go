package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		{"What is Article 21?", IntentDefinition},
		{"define consideration in contract law", IntentDefinition},
		{"How to file an FIR?", IntentProcedure},
		{"procedure for registering a company", IntentProcedure},
		{"What are my fundamental rights?", IntentRights},
		{"fundamental rights of citizens", IntentRights},
		{"penalty for theft", IntentPunishment},
		{"jail term for drunk driving", IntentPunishment},
		{"tell me about the Supreme Court", IntentGeneral},
		// Definition cues win over punishment cues by rule order.
		{"what is the punishment for murder", IntentDefinition},
		{"", IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyIntent(tt.query))
		})
	}
}

func TestClassifyIntent_Pure(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, IntentProcedure, ClassifyIntent("steps to register property"))
	}
}

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"article 14 of the constitution", "Constitutional Law"},
		{"murder under the ipc", "Criminal Law"},
		{"breach of agreement damages", "Contract Law"},
		{"defective goods refund", "Consumer Law"},
		{"shares of a public company", "Corporate Law"},
		{"divorce and custody", "Family Law"},
		{"sale of land", "Property Law"},
		{"industrial dispute with employer", "Labor Law"},
		{"something entirely unrelated", "General Law"},
		// Constitutional triggers are checked before criminal ones.
		{"writ petition against police", "Constitutional Law"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCategory(tt.text))
		})
	}
}
