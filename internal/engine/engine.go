package engine

import (
	"math/rand"
	"unicode/utf8"

	"github.com/kolecko-ai/travel-assistant/internal/catalog"
	"github.com/kolecko-ai/travel-assistant/internal/model"
)

// Typing-indicator captions. Search-flavored ones accompany replies that
// carry offer payloads, thinking-flavored ones everything else.
var searchTypingTexts = []string{
	"Koumám, co ti nabídnout",
	"Vybírám z nabídek",
	"Hledám to nejlepší",
	"Přemýšlím nad možnostmi",
	"Dávám to dohromady",
	"Procházím nabídky pro tebe",
	"Šťourám se v nabídkách",
	"Moment, ladím detaily",
}

var thinkingTypingTexts = []string{
	"Musím to promyslet",
	"Chvilku, mrknu na to",
	"Hned to bude",
	"Moment…",
	"Přemýšlím…",
	"Dej mi vteřinku",
}

var howIRecommendResponses = []string{
	"Prošel jsem nabídky na Slevomatu a hlavně jsem pročetl hodnocení a recenze od zákazníků, kteří už nabídku vyzkoušeli. Na jejich zkušenostech mi záleží nejvíc – díky nim vím, co opravdu stojí za to.",
	"Čerpám přímo z nabídek na Slevomatu. Ke každé nabídce si pročtu, co zákazníci napsali v recenzích – jejich hodnocení je pro mě klíčové. Právě díky tomu ti doporučuji to, co má ověřenou kvalitu od skutečných lidí.",
	"Můj hlavní zdroj jsou hodnocení zákazníků na Slevomatu. Pročetl jsem recenze lidí, kteří nabídky už využili, a podle jejich zkušeností vybírám. K tomu samozřejmě znám detaily každé nabídky – co obsahuje, kde se nachází a za kolik.",
	"Vycházím z toho, co říkají ostatní zákazníci. Na Slevomatu si ke každé nabídce pročtu hodnocení a recenze – a právě ty jsou pro mě rozhodující. Když lidi chválí, doporučím i tobě. 😊",
}

var offTopicResponses = []string{
	"Tohle bohužel není moje parketa. Ale cestování a zážitky – tam se vyznám!",
	"Na tohle ti neporadím, ale zkus se mě zeptat na dovolenou nebo zážitky.",
	"Tady jsem mimo. Pojďme radši na to, co umím – nabídky cestování a zážitků!",
	"Ajaj, tohle je nad moje síly. Ale najít ti super zážitek nebo dovolenou? To zvládnu!",
	"Hmm, tohle není úplně můj obor. Jsem specialista na cestování a zážitky ze Slevomatu.",
	"Promiň, ale tady ti nepomůžu. Zkus se zeptat na nějaký výlet nebo zážitek!",
	"Tohle mám zakázané téma 😅 Radši mi řekni, kam chceš vyrazit nebo co chceš zažít.",
	"Na tohle odpověď nemám. Ale co třeba wellness víkend nebo adrenalinový zážitek?",
	"Tady ti neporadím. Moje doména jsou slevomatí zážitky a cestování – co tě láká?",
}

// Response is what the engine produces for one user turn.
type Response struct {
	Text       string
	Deals      []model.Deal
	Activities []model.Activity
	Image      string

	// Path names the reply path that produced this response, for metrics.
	Path string
}

// HasContent reports whether the response carries an offer payload.
func (r Response) HasContent() bool {
	return len(r.Deals) > 0 || len(r.Activities) > 0
}

// Engine is the deterministic conversation engine. Create one per
// conversation; it owns the anti-repeat pickers and is not safe for
// concurrent use.
type Engine struct {
	deals         *catalog.DealStore
	activities    *catalog.ActivityStore
	dealsPerReply int

	searchTyping   *VariationPicker
	thinkingTyping *VariationPicker
	offTopic       *VariationPicker
	howIRecommend  *VariationPicker

	rules []rule
}

// New creates an engine drawing offers from the given stores.
func New(deals *catalog.DealStore, activities *catalog.ActivityStore, dealsPerReply int, rnd *rand.Rand) *Engine {
	e := &Engine{
		deals:          deals,
		activities:     activities,
		dealsPerReply:  dealsPerReply,
		searchTyping:   NewVariationPicker(searchTypingTexts, rnd),
		thinkingTyping: NewVariationPicker(thinkingTypingTexts, rnd),
		offTopic:       NewVariationPicker(offTopicResponses, rnd),
		howIRecommend:  NewVariationPicker(howIRecommendResponses, rnd),
	}
	e.rules = e.buildRules()
	return e
}

// Respond computes the assistant's reply to the user's latest message.
// history is the full message log including the new user message as its
// last entry. The engine never fails a turn: anything unrecognized falls
// through to a catch-all or an off-topic deflection.
func (e *Engine) Respond(userText string, history []model.Message) Response {
	t := newTurn(userText, history)

	for _, r := range e.rules {
		if resp := r.apply(t); resp != nil {
			resp.Path = r.name
			return *resp
		}
	}

	return e.slotFlow(t)
}

// TypingCaption picks a typing-indicator caption, search-flavored when the
// pending reply carries offers.
func (e *Engine) TypingCaption(hasContent bool) string {
	if hasContent {
		return e.searchTyping.Pick()
	}
	return e.thinkingTyping.Pick()
}

// FeedbackReply is the canned reaction to a thumbs up/down on the last
// recommendation.
func (e *Engine) FeedbackReply(up bool) Response {
	if up {
		return Response{
			Text:  "Děkuju, to je milé.",
			Image: "assets/like.png",
			Path:  "feedback_up",
		}
	}
	return Response{
		Text:  "To mne mrzí. Pomoz mi pochopit, kde jsem udělal chybku. Školím se a ty mi pomůžeš být příště lepším.",
		Image: "assets/dislike.png",
		Path:  "feedback_down",
	}
}

// DisclaimerReply explains the assistant's limits when the user taps the
// disclaimer notice.
func (e *Engine) DisclaimerReply() Response {
	return Response{
		Text: "Jsem tu teprve chvilku a učím se za pochodu. Doporučení dávám podle tvých odpovědí, ale občas se můžu splést.",
		Path: "disclaimer",
	}
}

// runeLen measures text length the way the reply heuristics expect,
// in characters rather than bytes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
