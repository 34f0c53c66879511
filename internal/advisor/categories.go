package advisor

// Category identifies one advisory topic. Categories are static
// configuration: each carries a canned response template and a fixed
// recommendation list.
type Category string

const (
	CategoryHardwareWallet      Category = "hardware_wallet"
	CategoryTwoFactorAuth       Category = "two_factor_auth"
	CategoryExchangeCustody     Category = "exchange_custody"
	CategoryDeFiRisk            Category = "defi_risk"
	CategoryScamAwareness       Category = "scam_awareness"
	CategoryPremiumOptimization Category = "premium_optimization"
	CategoryBackupRecovery      Category = "backup_recovery"
	CategoryMultisig            Category = "multisig"

	// CategoryWelcome answers empty or whitespace-only messages.
	CategoryWelcome Category = "welcome"
	// CategoryGeneral is the fallback when no keyword set matches.
	CategoryGeneral Category = "general"
)

// Templates interpolate {name} and, for the general fallback, the
// caller's original {message} verbatim.
type categoryContent struct {
	template        string
	recommendations []string
}

var baselineRecommendations = []string{
	"Hardware wallet usage = 40% premium reduction",
	"Two-factor authentication = 15% reduction",
	"Regular security audits = 10% reduction",
	"Proper backup procedures = 20% reduction",
}

var categories = map[Category]categoryContent{
	CategoryHardwareWallet: {
		template: "Excellent question, {name}! Hardware wallets are the gold standard for crypto security. " +
			"Using a hardware wallet like Ledger or Trezor can reduce your insurance premiums by up to 40%. " +
			"These devices keep your private keys offline, making them nearly impossible to hack remotely.",
		recommendations: []string{
			"Hardware wallet usage = 40% premium reduction",
			"Consider Ledger Nano X or Trezor Model T",
			"Store seed phrase securely (separate location)",
			"Enable PIN protection on device",
		},
	},
	CategoryTwoFactorAuth: {
		template: "Great thinking, {name}! Two-factor authentication is crucial. " +
			"Using 2FA on all your crypto accounts can reduce premiums by 15%. " +
			"Avoid SMS-based 2FA - use app-based authenticators like Google Authenticator or hardware keys like YubiKey.",
		recommendations: []string{
			"App-based 2FA = 15% premium reduction",
			"Use Google Authenticator or Authy",
			"Avoid SMS-based 2FA (vulnerable to SIM swaps)",
			"Consider hardware keys for maximum security",
		},
	},
	CategoryExchangeCustody: {
		template: "Important consideration, {name}! Keeping crypto on exchanges increases risk and premiums. " +
			"Moving funds to self-custody (hardware wallet) can reduce your premium by 30-50%. " +
			"Only keep trading amounts on exchanges.",
		recommendations: []string{
			"Self-custody reduces premiums by 30-50%",
			"Only keep trading amounts on exchanges",
			"Use reputable exchanges with insurance coverage",
			"Enable all available security features",
		},
	},
	CategoryDeFiRisk: {
		template: "Smart question, {name}! DeFi carries higher risks but there are ways to reduce premiums: " +
			"Use only audited protocols, start with established platforms like Uniswap/Aave, and consider DeFi insurance add-ons.",
		recommendations: []string{
			"Use only audited protocols = 20% reduction",
			"Stick to established platforms (Uniswap, Aave)",
			"Consider DeFi-specific insurance coverage",
			"Monitor protocol health regularly",
		},
	},
	CategoryScamAwareness: {
		template: "Crucial awareness, {name}! Scam protection education can reduce premiums by 10%. " +
			"Always verify URLs, never click suspicious links, and use bookmarks for important sites. " +
			"Our AI monitors for new scam patterns 24/7.",
		recommendations: []string{
			"Scam awareness training = 10% reduction",
			"Always verify website URLs",
			"Use bookmarks for important sites",
			"Report suspicious activities immediately",
		},
	},
	CategoryPremiumOptimization: {
		template: "Perfect question, {name}! Here's how to maximize your premium reductions: " +
			"Combine hardware wallet (40% off) + 2FA (15% off) + security audit (10% off) = up to 65% total savings. " +
			"The more security measures, the lower your premium!",
		recommendations: []string{
			"Hardware wallet = 40% reduction",
			"2FA on all accounts = 15% reduction",
			"Regular security audits = 10% reduction",
			"Combine all measures for maximum savings",
		},
	},
	CategoryBackupRecovery: {
		template: "Critical topic, {name}! Proper backup procedures can reduce premiums by 20%. " +
			"Store your seed phrase on metal backup plates, use multiple secure locations, and never store digitally. " +
			"Lost key coverage requires verified backup procedures.",
		recommendations: []string{
			"Metal backup plates = 20% reduction",
			"Multiple secure storage locations",
			"Never store seed phrases digitally",
			"Document your backup procedures",
		},
	},
	CategoryMultisig: {
		template: "Advanced security, {name}! Multi-signature wallets offer the highest protection and can reduce premiums by up to 50%. " +
			"Requires 2+ signatures for transactions. Great for high-value holdings.",
		recommendations: []string{
			"Multi-signature setup = 50% reduction",
			"Requires 2-3 signature approvals",
			"Ideal for holdings above €50,000",
			"Consider Gnosis Safe or Casa solutions",
		},
	},
	CategoryWelcome: {
		template: "Hi {name}! I'm here to help you reduce your crypto insurance premiums. " +
			"Please ask me any questions about crypto security, insurance options, or premium reduction strategies!",
		recommendations: baselineRecommendations,
	},
	CategoryGeneral: {
		template: "Hi {name}! I'm here to help you reduce your crypto insurance premiums. " +
			"Based on your question about '{message}', I can provide personalized advice. " +
			"The key is implementing multiple security layers - each one reduces your premium!",
		recommendations: baselineRecommendations,
	},
}
