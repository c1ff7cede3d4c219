package services

import (
	"strings"

	model "github.com/Itish41/NyayaMitra/models"
)

// attributionRules map topical vocabulary to the governing statutes.
// Evaluated in order with first-match-wins, so the surrogacy group is
// checked before the broader family-law triggers that would otherwise
// swallow it.
var attributionRules = []struct {
	triggers  []string
	citations []model.Citation
}{
	{
		triggers: []string{"surrogacy", "surrogate"},
		citations: []model.Citation{
			{
				Title:   "Surrogacy (Regulation) Act, 2021",
				Content: "Comprehensive law regulating surrogacy arrangements in India",
				Source:  "Surrogacy (Regulation) Act, 2021",
				Section: "Sections 1-58",
				URL:     "https://www.indiacode.nic.in/handle/123456789/16471",
			},
			{
				Title:   "Assisted Reproductive Technology (Regulation) Act, 2021",
				Content: "Regulation of assisted reproductive technology clinics and banks",
				Source:  "ART (Regulation) Act, 2021",
				Section: "Various Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/16470",
			},
		},
	},
	{
		triggers: []string{"constitution", "fundamental", "article", "pil", "rights"},
		citations: []model.Citation{
			{
				Title:   "Constitution of India",
				Content: "Supreme law of India containing fundamental rights, directive principles, and government structure",
				Source:  "Constitution of India, 1950",
				Section: "Relevant Articles",
				URL:     "https://www.india.gov.in/my-government/constitution-india/constitution-india-full-text",
			},
		},
	},
	{
		triggers: []string{"criminal", "ipc", "murder", "theft", "fir", "police", "crime"},
		citations: []model.Citation{
			{
				Title:   "Indian Penal Code",
				Content: "Primary criminal law statute defining offenses and punishments",
				Source:  "Indian Penal Code, 1860",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/2263",
			},
			{
				Title:   "Code of Criminal Procedure",
				Content: "Procedural law for criminal cases in India",
				Source:  "CrPC, 1973",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/2264",
			},
		},
	},
	{
		triggers: []string{"marriage", "divorce", "custody", "maintenance", "family"},
		citations: []model.Citation{
			{
				Title:   "Hindu Marriage Act",
				Content: "Law governing Hindu marriages and divorce",
				Source:  "Hindu Marriage Act, 1955",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/2277",
			},
			{
				Title:   "Indian Christian Marriage Act",
				Content: "Law governing Christian marriages in India",
				Source:  "Indian Christian Marriage Act, 1872",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/2272",
			},
		},
	},
	{
		triggers: []string{"property", "land", "real estate", "ownership"},
		citations: []model.Citation{
			{
				Title:   "Transfer of Property Act",
				Content: "Law governing transfer of property in India",
				Source:  "Transfer of Property Act, 1882",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/2281",
			},
			{
				Title:   "Registration Act",
				Content: "Law governing registration of documents",
				Source:  "Registration Act, 1908",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/2279",
			},
		},
	},
	{
		triggers: []string{"contract", "agreement", "breach"},
		citations: []model.Citation{
			{
				Title:   "Indian Contract Act",
				Content: "Law governing contracts and agreements in India",
				Source:  "Indian Contract Act, 1872",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/2268",
			},
		},
	},
	{
		triggers: []string{"consumer", "protection", "goods", "services"},
		citations: []model.Citation{
			{
				Title:   "Consumer Protection Act",
				Content: "Law protecting consumer rights and providing redressal mechanisms",
				Source:  "Consumer Protection Act, 2019",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/15397",
			},
		},
	},
	{
		triggers: []string{"labor", "labour", "employment", "worker", "employee"},
		citations: []model.Citation{
			{
				Title:   "Industrial Disputes Act",
				Content: "Law governing industrial relations and labor disputes",
				Source:  "Industrial Disputes Act, 1947",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/2285",
			},
			{
				Title:   "Employees' Provident Funds Act",
				Content: "Law governing provident fund for employees",
				Source:  "EPF Act, 1952",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/2287",
			},
		},
	},
	{
		triggers: []string{"cyber", "internet", "digital", "online", "data protection"},
		citations: []model.Citation{
			{
				Title:   "Information Technology Act",
				Content: "Law governing cyber crimes and digital transactions",
				Source:  "IT Act, 2000",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/2289",
			},
			{
				Title:   "Digital Personal Data Protection Act",
				Content: "Law governing data protection and privacy",
				Source:  "DPDP Act, 2023",
				Section: "Relevant Sections",
				URL:     "https://www.indiacode.nic.in/handle/123456789/16573",
			},
		},
	},
}

// defaultAttributions is returned when no topical group matched, so a
// generated answer always carries at least one pointer to an official
// source.
var defaultAttributions = []model.Citation{
	{
		Title:   "India Code Portal",
		Content: "Official repository of all Central Acts and Rules",
		Source:  "Government of India",
		Section: "All Acts",
		URL:     "https://www.indiacode.nic.in/",
	},
	{
		Title:   "Supreme Court of India",
		Content: "Apex court judgments and legal precedents",
		Source:  "Supreme Court of India",
		Section: "Court Judgments",
		URL:     "https://main.sci.gov.in/",
	},
}

// AttributeSources derives statute-level citations from free text,
// typically the query concatenated with a generated answer. The result is
// never empty and is safe for callers to mutate.
func AttributeSources(text string) []model.Citation {
	t := strings.ToLower(text)
	for _, rule := range attributionRules {
		for _, trig := range rule.triggers {
			if strings.Contains(t, trig) {
				out := make([]model.Citation, len(rule.citations))
				copy(out, rule.citations)
				return out
			}
		}
	}
	out := make([]model.Citation, len(defaultAttributions))
	copy(out, defaultAttributions)
	return out
}
