package services

import model "github.com/Itish41/NyayaMitra/models"

// seedCorpus returns the built-in starter set of Indian legal documents
// used when the database has no corpus yet. IDs are left empty so the
// database assigns them on first persist.
func seedCorpus() []model.CorpusDocument {
	return []model.CorpusDocument{
		{
			Title:    "Constitution of India - Article 14",
			Content:  "Article 14: Equality before law. The State shall not deny to any person equality before the law or the equal protection of the laws within the territory of India. This fundamental right ensures that all citizens are treated equally regardless of religion, race, caste, sex or place of birth.",
			Source:   "Constitution of India",
			Section:  "Article 14",
			Category: "Constitutional Law",
			Keywords: []string{"equality", "fundamental rights", "constitution", "discrimination", "equal protection"},
			URL:      "https://www.india.gov.in/my-government/constitution-india/constitution-india-full-text",
		},
		{
			Title:    "Constitution of India - Article 19",
			Content:  "Article 19: Protection of certain rights regarding freedom of speech etc. All citizens shall have the right to freedom of speech and expression, to assemble peaceably and without arms, to form associations or unions, to move freely throughout India, and to practice any profession or carry on any occupation, trade or business.",
			Source:   "Constitution of India",
			Section:  "Article 19",
			Category: "Constitutional Law",
			Keywords: []string{"freedom of speech", "expression", "assembly", "movement", "profession", "fundamental rights"},
			URL:      "https://www.india.gov.in/my-government/constitution-india/constitution-india-full-text",
		},
		{
			Title:    "Constitution of India - Article 21",
			Content:  "Article 21: Protection of life and personal liberty. No person shall be deprived of his life or personal liberty except according to procedure established by law. This article is the heart of fundamental rights and has been interpreted broadly by the Supreme Court.",
			Source:   "Constitution of India",
			Section:  "Article 21",
			Category: "Constitutional Law",
			Keywords: []string{"life", "liberty", "fundamental rights", "constitution", "protection", "due process"},
			URL:      "https://www.india.gov.in/my-government/constitution-india/constitution-india-full-text",
		},
		{
			Title:    "Indian Penal Code - Section 302",
			Content:  "Section 302: Punishment for murder. Whoever commits murder shall be punished with death, or imprisonment for life, and shall also be liable to fine. Murder is defined as causing death with intention or knowledge that the act is likely to cause death.",
			Source:   "Indian Penal Code, 1860",
			Section:  "Section 302",
			Category: "Criminal Law",
			Keywords: []string{"murder", "death penalty", "life imprisonment", "criminal", "punishment", "homicide"},
			URL:      "https://www.indiacode.nic.in/handle/123456789/2263",
		},
		{
			Title:    "Indian Penal Code - Section 375",
			Content:  "Section 375: Rape. A man is said to commit rape if he has sexual intercourse with a woman under circumstances falling under any of the descriptions given in this section without her consent or against her will, or with her consent when obtained by putting her in fear of death or hurt.",
			Source:   "Indian Penal Code, 1860",
			Section:  "Section 375",
			Category: "Criminal Law",
			Keywords: []string{"rape", "sexual offence", "consent", "women safety", "criminal", "punishment"},
			URL:      "https://www.indiacode.nic.in/handle/123456789/2263",
		},
		{
			Title:    "Indian Penal Code - Section 379",
			Content:  "Section 379: Punishment for theft. Whoever commits theft shall be punished with imprisonment of either description for a term which may extend to three years, or with fine, or with both. Theft is the dishonest taking of movable property out of the possession of any person without that person's consent.",
			Source:   "Indian Penal Code, 1860",
			Section:  "Section 379",
			Category: "Criminal Law",
			Keywords: []string{"theft", "stealing", "movable property", "criminal", "punishment"},
			URL:      "https://www.indiacode.nic.in/handle/123456789/2263",
		},
		{
			Title:    "Code of Criminal Procedure - Section 154",
			Content:  "Section 154: Information in cognizable cases. Every information relating to the commission of a cognizable offence, if given orally to an officer in charge of a police station, shall be reduced to writing by him or under his direction, and be read over to the informant. Such information is called First Information Report (FIR).",
			Source:   "Code of Criminal Procedure, 1973",
			Section:  "Section 154",
			Category: "Criminal Law",
			Keywords: []string{"fir", "first information report", "police", "cognizable", "complaint", "criminal procedure"},
			URL:      "https://www.indiacode.nic.in/handle/123456789/2263",
		},
		{
			Title:    "Indian Contract Act - Section 10",
			Content:  "Section 10: What agreements are contracts. All agreements are contracts if they are made by the free consent of parties competent to contract, for a lawful consideration and with a lawful object, and are not hereby expressly declared to be void. Essential elements include offer, acceptance, consideration, and legal capacity.",
			Source:   "Indian Contract Act, 1872",
			Section:  "Section 10",
			Category: "Contract Law",
			Keywords: []string{"contract", "agreement", "consent", "consideration", "offer", "acceptance", "legal capacity"},
			URL:      "https://www.indiacode.nic.in/handle/123456789/2268",
		},
		{
			Title:    "Indian Contract Act - Section 73",
			Content:  "Section 73: Compensation for loss or damage caused by breach of contract. When a contract has been broken, the party who suffers by such breach is entitled to receive compensation for any loss or damage caused to him thereby, which naturally arose in the usual course of things from such breach.",
			Source:   "Indian Contract Act, 1872",
			Section:  "Section 73",
			Category: "Contract Law",
			Keywords: []string{"contract", "breach", "compensation", "damages", "loss"},
			URL:      "https://www.indiacode.nic.in/handle/123456789/2268",
		},
		{
			Title:    "Consumer Protection Act - Section 2(1)",
			Content:  "Section 2(1): Consumer definition. Consumer means any person who buys any goods for a consideration which has been paid or promised, and includes any user of such goods. This excludes persons who obtain goods for resale or commercial purpose. Consumer rights include right to safety, information, choice, and redressal.",
			Source:   "Consumer Protection Act, 2019",
			Section:  "Section 2(1)",
			Category: "Consumer Law",
			Keywords: []string{"consumer", "buyer", "goods", "services", "consumer rights", "protection", "commercial"},
			URL:      "https://www.indiacode.nic.in/handle/123456789/15397",
		},
		{
			Title:    "Companies Act - Section 2(20)",
			Content:  "Section 2(20): Company definition. Company means a company incorporated under this Act or under any previous company law. It includes private companies, public companies, one person companies, and foreign companies operating in India.",
			Source:   "Companies Act, 2013",
			Section:  "Section 2(20)",
			Category: "Corporate Law",
			Keywords: []string{"company", "incorporation", "corporate", "business", "private company", "public company"},
			URL:      "https://www.mca.gov.in/content/mca/global/en/acts-rules/acts/companies-act-2013.html",
		},
		{
			Title:    "Right to Information Act - Section 2(f)",
			Content:  "Section 2(f): Information definition. Information means any material in any form, including records, documents, memos, e-mails, opinions, advices, press releases, circulars, orders, logbooks, contracts, reports, papers, samples, models, data material held in any electronic form. RTI promotes transparency and accountability in governance.",
			Source:   "Right to Information Act, 2005",
			Section:  "Section 2(f)",
			Category: "Administrative Law",
			Keywords: []string{"information", "RTI", "transparency", "documents", "records", "public information", "governance"},
			URL:      "https://www.indiacode.nic.in/handle/123456789/1362",
		},
		{
			Title:    "Indian Evidence Act - Section 3",
			Content:  "Section 3: Interpretation clause. Evidence means and includes all statements which the Court permits or requires to be made before it by witnesses, in relation to matters of fact under inquiry. It includes documentary evidence and all documents including electronic records.",
			Source:   "Indian Evidence Act, 1872",
			Section:  "Section 3",
			Category: "Evidence Law",
			Keywords: []string{"evidence", "witness", "testimony", "documents", "court", "proof", "electronic records"},
			URL:      "https://www.indiacode.nic.in/handle/123456789/2034",
		},
		{
			Title:    "Information Technology Act - Section 66",
			Content:  "Section 66: Computer related offences. If any person, dishonestly or fraudulently, does any act referred to in section 43, he shall be punishable with imprisonment for a term which may extend to three years or with fine which may extend to five lakh rupees or with both.",
			Source:   "Information Technology Act, 2000",
			Section:  "Section 66",
			Category: "Cyber Law",
			Keywords: []string{"cyber", "computer", "hacking", "digital", "online", "punishment"},
			URL:      "https://www.indiacode.nic.in/handle/123456789/2289",
		},
		{
			Title:    "Motor Vehicles Act - Section 185",
			Content:  "Section 185: Driving by a drunken person or under the influence of drugs. Whoever, while driving a motor vehicle, has in his blood alcohol exceeding 30 mg per 100 ml of blood detected in a test, shall be punishable with imprisonment of either description for a term which may extend to six months, or with fine which may extend to two thousand rupees, or with both.",
			Source:   "Motor Vehicles Act, 1988",
			Section:  "Section 185",
			Category: "Traffic Law",
			Keywords: []string{"drunk driving", "alcohol", "driving", "motor vehicle", "traffic offence", "punishment"},
			URL:      "https://www.indiacode.nic.in/handle/123456789/1361",
		},
	}
}
