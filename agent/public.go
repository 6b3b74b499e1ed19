package agent

import (
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to keep his books clean: find duplicate transactions,
			decide which record should survive a merge, and understand discrepancies between
			amounts recorded for the same expense.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper creates the expert on double-entry bookkeeping and
// duplicate detection.
func NewBookkeeper() *Expert {
	return &Expert{
		Name: "Bookkeeper",
		Description: `This is an expert bookkeeper. He knows double-entry bookkeeping inside out:
		debits, credits, drafts vs posted transactions, and how books format amounts and dates.
		Ask the Bookkeeper to spot likely duplicate transactions: same counterparty under slightly
		different descriptions, same amount on close dates, bank-imported entries shadowing
		manually recorded ones.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an expert in double-entry bookkeeping on the Bkper platform.
				Transactions have a credit (origin) and a debit (destination) account, a date,
				an exact decimal amount and a free-text description. A draft becomes final when posted.
				Duplicates typically come from recording the same expense twice: once by hand,
				once imported from a bank statement, with slightly different descriptions.
				When asked about candidate duplicates, reason from description token overlap,
				equal or near amounts, and close dates, and always say which record should
				survive: a posted one over a draft, otherwise the most recently created.
			`}}},
		},
	}
}

// NewAuditor creates the expert on reconciliation trails.
func NewAuditor() *Expert {
	return &Expert{
		Name: "Auditor",
		Description: `This is the Auditor. He cares about one thing: ledger amounts never change
		silently. Ask the Auditor how to handle a merge where the two records disagree on the
		amount, and how to read the audit notes recording such discrepancies.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an auditor of bookkeeping merges. When two records of the same expense
				disagree on the amount, the difference must stay visible: either the merge is
				refused and reconciled by hand, or the surviving amount is kept and the dated
				difference is recorded as its own transaction (the audit note, formatted as
				"<date> <absolute difference> <original description>"). Explain discrepancies
				to the user in those terms and never suggest discarding an amount silently.
			`}}},
		},
	}
}
