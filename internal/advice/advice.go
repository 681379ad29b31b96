// Package advice answers personal-finance questions from a fixed table of
// canned responses, without any network access.
package advice

import (
	"strings"
	"unicode/utf8"
)

// minMessageLen is the rune length below which a message is treated as a
// greeting regardless of its content.
const minMessageLen = 5

const (
	TopicGreeting = "greeting"
	TopicFallback = "fallback"
)

// Rule maps a set of marker substrings to a canned response. A rule matches
// when the lowercased message contains any of its markers.
type Rule struct {
	Name    string
	Markers []string
	Text    string
}

func (r Rule) matches(lowered string) bool {
	for _, m := range r.Markers {
		if strings.Contains(lowered, m) {
			return true
		}
	}
	return false
}

// greeting is evaluated before every topic and also fires for very short input.
// Bare "hi"/"hey" are covered by the length check; as substrings they would
// match words like "this" or "they".
var greeting = Rule{
	Name:    TopicGreeting,
	Markers: []string{"hello", "greetings", "howdy", "good morning", "good afternoon", "good evening"},
	Text:    greetingText,
}

// rules is evaluated in order and the first match wins. Topics overlap
// ("save for a mortgage"), so the order is the priority. Markers are plain
// substrings, so short words that hide inside others ("tax" in "syntax")
// are spelled out as phrases.
var rules = []Rule{
	{Name: "debt", Markers: []string{"debt", "loan", "credit card", "mortgage", "student loan"}, Text: debtText},
	{Name: "budget", Markers: []string{"budget", "spending", "expenses", "track my money"}, Text: budgetText},
	{Name: "savings", Markers: []string{"saving", "save money", "save more", "savings"}, Text: savingsText},
	{Name: "emergency_fund", Markers: []string{"emergency", "rainy day", "safety net"}, Text: emergencyFundText},
	{Name: "investing", Markers: []string{"invest", "index fund", "etf", "portfolio", "mutual fund"}, Text: investingText},
	{Name: "retirement", Markers: []string{"retire", "401k", "401(k)", "roth ira", "traditional ira", "pension"}, Text: retirementText},
	{Name: "taxes", Markers: []string{"taxes", "tax return", "tax refund", "income tax", "tax bracket", "deduction", "capital gains"}, Text: taxText},
	{Name: "insurance", Markers: []string{"insurance", "insure", "premium", "deductible"}, Text: insuranceText},
	{Name: "credit_score", Markers: []string{"credit score", "credit report", "fico", "credit history"}, Text: creditScoreText},
	{Name: "home_buying", Markers: []string{"buy a house", "buying a house", "buy a home", "buying a home", "first home", "homeowner", "down payment", "real estate"}, Text: homeBuyingText},
	{Name: "crypto", Markers: []string{"crypto", "bitcoin", "ethereum", "blockchain"}, Text: cryptoText},
	{Name: "stock_market", Markers: []string{"stock market", "stocks", "which stock", "stock price", "shares of", "dividend"}, Text: stockMarketText},
	{Name: "inflation", Markers: []string{"inflation", "cost of living", "prices rising"}, Text: inflationText},
	{Name: "income", Markers: []string{"income", "salary", "pay raise", "a raise", "side hustle", "earn more"}, Text: incomeText},
	{Name: "education", Markers: []string{"college", "tuition", "529", "education", "fafsa"}, Text: educationText},
	{Name: "banking", Markers: []string{"bank", "checking account", "overdraft", "atm fee"}, Text: bankingText},
	{Name: "planning", Markers: []string{"goal", "financial plan", "plan my finances", "wealth"}, Text: planningText},
}

// Respond returns the canned advice for message. It never fails.
func Respond(message string) string {
	return match(message).Text
}

// Topic returns the name of the rule Respond would use for message.
func Topic(message string) string {
	return match(message).Name
}

// Topics lists every rule name in priority order, greeting first and
// fallback last.
func Topics() []string {
	names := make([]string, 0, len(rules)+2)
	names = append(names, greeting.Name)
	for _, r := range rules {
		names = append(names, r.Name)
	}
	return append(names, TopicFallback)
}

func match(message string) Rule {
	lowered := strings.ToLower(strings.TrimSpace(message))
	if utf8.RuneCountInString(lowered) < minMessageLen || greeting.matches(lowered) {
		return greeting
	}
	for _, r := range rules {
		if r.matches(lowered) {
			return r
		}
	}
	return Rule{Name: TopicFallback, Text: fallbackText}
}
