package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeSources(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantTitles []string
	}{
		{
			name:       "surrogacy before family law",
			text:       "is commercial surrogacy legal in india",
			wantTitles: []string{"Surrogacy (Regulation) Act, 2021", "Assisted Reproductive Technology (Regulation) Act, 2021"},
		},
		{
			name:       "constitutional",
			text:       "scope of article 32 writ jurisdiction",
			wantTitles: []string{"Constitution of India"},
		},
		{
			name:       "criminal pair",
			text:       "how does the police investigate an fir",
			wantTitles: []string{"Indian Penal Code", "Code of Criminal Procedure"},
		},
		{
			name:       "family",
			text:       "grounds for divorce and child custody",
			wantTitles: []string{"Hindu Marriage Act", "Indian Christian Marriage Act"},
		},
		{
			name:       "property",
			text:       "registering land ownership",
			wantTitles: []string{"Transfer of Property Act", "Registration Act"},
		},
		{
			name:       "contract",
			text:       "remedies for breach of agreement",
			wantTitles: []string{"Indian Contract Act"},
		},
		{
			name:       "consumer",
			text:       "defective goods complaint",
			wantTitles: []string{"Consumer Protection Act"},
		},
		{
			name:       "labor",
			text:       "wrongful termination of a worker",
			wantTitles: []string{"Industrial Disputes Act", "Employees' Provident Funds Act"},
		},
		{
			name:       "cyber",
			text:       "liability for defamation on the internet",
			wantTitles: []string{"Information Technology Act", "Digital Personal Data Protection Act"},
		},
		{
			name:       "default pair",
			text:       "something with no legal vocabulary at all",
			wantTitles: []string{"India Code Portal", "Supreme Court of India"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			citations := AttributeSources(tt.text)
			assert.Len(t, citations, len(tt.wantTitles))
			for i, want := range tt.wantTitles {
				assert.Equal(t, want, citations[i].Title)
				assert.NotEmpty(t, citations[i].URL)
			}
		})
	}
}

func TestAttributeSources_NeverEmpty(t *testing.T) {
	assert.NotEmpty(t, AttributeSources(""))
}

func TestAttributeSources_ReturnsCopies(t *testing.T) {
	first := AttributeSources("breach of contract")
	first[0].Title = "mutated"

	second := AttributeSources("breach of contract")
	assert.Equal(t, "Indian Contract Act", second[0].Title)
}
