// Package advisor maps free-text questions about crypto insurance to
// one of a fixed set of advisory categories and renders the canned
// response for that category. Classification is a pure function of the
// message text: no state, no I/O, safe for concurrent use.
package advisor

import "strings"

// rule pairs one keyword set with its category. Keyword literals are
// lower-case; matching is substring containment against the lower-cased
// message.
type rule struct {
	keywords []string
	category Category
}

// rules is ordered: the first set with any keyword hit wins, even if a
// later set would also match. The order is part of the contract.
var rules = []rule{
	{[]string{"hardware wallet", "cold storage", "ledger", "trezor"}, CategoryHardwareWallet},
	{[]string{"2fa", "two factor", "authentication", "google authenticator"}, CategoryTwoFactorAuth},
	{[]string{"exchange", "binance", "coinbase", "kraken", "centralized"}, CategoryExchangeCustody},
	{[]string{"defi", "smart contract", "protocol", "yield farming", "liquidity"}, CategoryDeFiRisk},
	{[]string{"scam", "phishing", "fake", "suspicious"}, CategoryScamAwareness},
	{[]string{"premium", "cost", "price", "reduce", "lower", "cheaper"}, CategoryPremiumOptimization},
	{[]string{"backup", "seed phrase", "recovery", "lost keys"}, CategoryBackupRecovery},
	{[]string{"multisig", "multi-signature", "multiple keys"}, CategoryMultisig},
}

// Match selects the category for a message. Empty or whitespace-only
// input maps to CategoryWelcome; no keyword hit maps to CategoryGeneral.
func Match(message string) Category {
	if strings.TrimSpace(message) == "" {
		return CategoryWelcome
	}

	lowered := strings.ToLower(message)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lowered, keyword) {
				return r.category
			}
		}
	}

	return CategoryGeneral
}

// Classify returns the advisory response and recommendation list for a
// message. callerName is interpolated verbatim into the response; the
// general fallback also interpolates the original message unmodified.
func Classify(message, callerName string) (string, []string) {
	category := Match(message)
	return Render(category, callerName, message), Recommendations(category)
}

// Render formats the category's response template with the supplied
// caller name and original message.
func Render(category Category, callerName, message string) string {
	content := categories[category]
	replacer := strings.NewReplacer("{name}", callerName, "{message}", message)
	return replacer.Replace(content.template)
}

// Recommendations returns a copy of the category's recommendation list,
// keeping the static table immutable.
func Recommendations(category Category) []string {
	content := categories[category]
	out := make([]string, len(content.recommendations))
	copy(out, content.recommendations)
	return out
}
