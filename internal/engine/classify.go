package engine

import (
	"regexp"
	"strings"

	"github.com/kolecko-ai/travel-assistant/internal/model"
)

var (
	greetingRe   = regexp.MustCompile(`\b(ahoj|cau|cus|dobr[ye]|hey|hi|hello|zdar|nazdar|hej|hoj)\b`)
	shortReplyRe = regexp.MustCompile(`\b(ahoj|cau|hej|hi|hello|zdar|ano|jo|jasne|ok|dobre|nj)\b`)
)

// turn bundles everything the rules need about the current user message.
type turn struct {
	text      string // raw user text
	norm      string // normalized user text
	history   []model.Message
	userCount int    // user messages so far, including this one
	lastBot   string // normalized text of the most recent bot message
}

func newTurn(userText string, history []model.Message) *turn {
	t := &turn{
		text:    userText,
		norm:    Normalize(userText),
		history: history,
	}
	for _, m := range history {
		if m.Sender == model.SenderUser {
			t.userCount++
		}
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Sender == model.SenderBot {
			t.lastBot = Normalize(history[i].Text)
			break
		}
	}
	return t
}

// rule is one entry in the ordered classifier table. apply returns nil
// when the rule does not claim the turn; the first non-nil result wins.
type rule struct {
	name  string
	apply func(t *turn) *Response
}

// buildRules assembles the special-intent table evaluated before the
// generic slot-filling flow. Order is the priority order.
func (e *Engine) buildRules() []rule {
	return []rule{
		{"greeting", e.ruleGreeting},
		{"name_question", e.ruleNameQuestion},
		{"how_i_recommend", e.ruleHowIRecommend},
		{"complaint", e.ruleComplaint},
		{"activities", e.ruleActivities},
		{"stays_after_activities", e.ruleStaysAfterActivities},
		{"help", e.ruleHelp},
		{"thanks", e.ruleThanks},
		{"post_feedback", e.rulePostDislike},
		{"more_offers", e.ruleMoreOffers},
		{"praise", e.rulePraise},
	}
}

// Greetings are only honored as the opening turn; later "ahoj" mid-answer
// must not hijack slot filling.
func (e *Engine) ruleGreeting(t *turn) *Response {
	if greetingRe.MatchString(t.norm) && t.userCount <= 1 {
		return &Response{Text: "Ahoj! 👋 Rád tě vidím. Řekni mi, kam chceš vyrazit, a já ti najdu ty nejlepší nabídky."}
	}
	return nil
}

func (e *Engine) ruleNameQuestion(t *turn) *Response {
	if FuzzyMatch(t.text, nameQuestionKeywords) {
		return &Response{Text: "Ve Slevomatu mi říkají Kolečko 😊 A jsem tu, abych ti pomohl najít ten nejlepší zážitek nebo dovolenou!"}
	}
	return nil
}

func (e *Engine) ruleHowIRecommend(t *turn) *Response {
	if FuzzyMatch(t.text, howIRecommendKeywords) {
		return &Response{Text: e.howIRecommend.Pick()}
	}
	return nil
}

// Complaints are handed off to a second bot; the handoff itself lives in
// the UI layer.
func (e *Engine) ruleComplaint(t *turn) *Response {
	if FuzzyMatch(t.text, complaintKeywords) {
		return &Response{Text: "Reklamaci zatím neumím vyřídit tak dobře jako můj chatbotí kolega Slávek. **Klikni sem** a já ti Slávka spustím. Řeknu mu rovnou, co potřebuješ a budete pokračovat spolu."}
	}
	return nil
}

func (e *Engine) ruleActivities(t *turn) *Response {
	if !IsActivityRequest(t.text) {
		return nil
	}
	if ActivitiesWereShown(t.history) {
		return &Response{Text: "Bohužel víc výletů v okolí momentálně nemám. Ale pokud chceš, můžu ti ukázat další nabídky pobytů! 🏨"}
	}
	return &Response{
		Text:       "Jasně! Mrkl jsem, co se dá v okolí podniknout. Tady je pár tipů:",
		Activities: e.activities.All(),
	}
}

// Once activities were shown, an accommodation request switches back to
// stays.
func (e *Engine) ruleStaysAfterActivities(t *turn) *Response {
	if ActivitiesWereShown(t.history) && IsStayRequest(t.text) {
		return &Response{
			Text:  "Jasně, tady jsou nabídky pobytů:",
			Deals: e.deals.PickRandom(e.dealsPerReply),
		}
	}
	return nil
}

func (e *Engine) ruleHelp(t *turn) *Response {
	if FuzzyMatch(t.text, helpKeywords) {
		return &Response{Text: "Jsem tu, abych ti usnadnil výběr z nabídek na Slevomatu. Řekni mi kam chceš jet, s kolika lidmi, kdy a jakou preferuješ stravu – a já ti najdu to nejlepší! 🏖️"}
	}
	return nil
}

// Thanks only short-circuits for short messages; "díky, a ještě bazén"
// must still reach extraction.
func (e *Engine) ruleThanks(t *turn) *Response {
	if FuzzyMatch(t.text, thanksKeywords) && runeLen(t.norm) < 20 {
		return &Response{Text: "Rádo se stalo! 😊 Pokud budeš potřebovat cokoliv dalšího, jsem tu pro tebe."}
	}
	return nil
}

// After a thumbs-down the assistant asked what went wrong; whatever the
// user says next is the explanation.
func (e *Engine) rulePostDislike(t *turn) *Response {
	if strings.Contains(t.lastBot, "pomoz mi pochopit") || strings.Contains(t.lastBot, "udelal chybku") {
		return &Response{Text: "Rozumím, díky za vysvětlení! Beru si to k srdci a příště budu chytřejší. Chceš, abych to zkusil znovu s jinými nabídkami?"}
	}
	return nil
}

func (e *Engine) ruleMoreOffers(t *turn) *Response {
	if !FuzzyMatch(t.text, moreOffersKeywords) {
		return nil
	}
	// If the last payload was activities, "more" means more activities,
	// and there are none left.
	for i := len(t.history) - 1; i >= 0; i-- {
		m := t.history[i]
		if m.Sender != model.SenderBot || (len(m.Deals) == 0 && len(m.Activities) == 0) {
			continue
		}
		if len(m.Activities) > 0 {
			return &Response{Text: "Bohužel víc výletů v okolí momentálně nemám. Ale pokud chceš, můžu ti ukázat další nabídky pobytů! 🏨"}
		}
		break
	}
	return &Response{
		Text:  "Jasně, tady je další várka nabídek. Snad tady najdeš, co hledáš:",
		Deals: e.deals.PickRandom(e.dealsPerReply),
	}
}

func (e *Engine) rulePraise(t *turn) *Response {
	if DealsWereShown(t.history) && FuzzyMatch(t.text, praiseKeywords) {
		return &Response{Text: "To mě těší! 😊 Pokud budeš chtít další nabídky nebo máš jiný dotaz, klidně piš."}
	}
	return nil
}
