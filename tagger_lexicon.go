package textlens

import "strings"

// lexEntry is one lexicon record. alt is a second tag the word can take
// ("run" is a verb or a noun); aux marks auxiliaries and modals.
type lexEntry struct {
	tag Tag
	alt Tag
	aux bool
}

var posLexicon = buildLexicon()

var modals = map[string]bool{
	"can": true, "could": true, "may": true, "might": true, "must": true,
	"shall": true, "should": true, "will": true, "would": true, "'ll": true,
	"’ll": true, "'d": true, "’d": true,
}

func buildLexicon() map[string]lexEntry {
	lex := make(map[string]lexEntry, 1024)
	add := func(tag Tag, words string) {
		for _, w := range strings.Fields(words) {
			lex[w] = lexEntry{tag: tag}
		}
	}
	addAux := func(words string) {
		for _, w := range strings.Fields(words) {
			lex[w] = lexEntry{tag: TagVerb, aux: true}
		}
	}
	addAlt := func(tag, alt Tag, words string) {
		for _, w := range strings.Fields(words) {
			lex[w] = lexEntry{tag: tag, alt: alt}
		}
	}

	add(TagDeterminer, `a an the this that these those each every either neither
		some any no all both another such what which whose my your his her its our
		their much many several few enough`)

	add(TagPronoun, `i me you he him she it we us they them myself yourself
		himself herself itself ourselves yourselves themselves mine yours hers ours
		theirs who whom whoever someone somebody something anyone anybody anything
		everyone everybody everything nobody nothing one`)

	add(TagPreposition, `about above across after against along among around as
		at before behind below beneath beside besides between beyond by despite
		down during except for from in inside into like near of off on onto out
		outside over past since through throughout till to toward towards under
		underneath until up upon via with within without per amid`)

	add(TagConjunction, `and or but nor yet so because although though unless
		whereas while if whether than once whenever wherever`)

	addAux(`am is are was were be been being have has had having do does did
		done can could may might must shall should will would 'm 're 's 've 'll 'd
		’m ’re ’s ’ve ’ll ’d`)

	add(TagAdverb, `not n't n’t very too also just only even still already
		always never often sometimes usually rarely seldom soon now then here there
		today tomorrow yesterday again almost quite rather really perhaps maybe
		ever once twice else away back forward together instead indeed however
		therefore thus hence meanwhile otherwise nevertheless moreover furthermore
		anyway somewhat extremely highly incredibly absolutely totally completely
		fairly pretty slightly barely hardly nearly how when where why`)

	add(TagAdjective, `good bad great new old big small large little long short
		high low young early late important different same other next last first
		second third right wrong real best better worse worst happy sad easy hard
		simple free full whole true false sure clear able possible likely strong
		weak hot cold warm cool fast slow rich poor dark bright quick quiet loud
		nice fine excellent amazing awesome terrible horrible awful wonderful
		beautiful ugly brilliant fantastic lovely pleasant angry proud glad calm
		safe dangerous modern ancient main major minor public private local
		national international global social political economic financial
		personal special general common certain recent current final open busy
		ready available serious huge tiny deep wide narrow heavy light cheap
		expensive famous popular difficult necessary entire various own`)

	add(TagNoun, `time year people way day man woman child children world life
		hand part place case week company system program question work government
		number night point home water room mother father area money story fact
		month lot study book eye job word business issue side kind head house
		service friend power hour game line end member law car city community name
		president team minute idea kid body information school face others level
		office door health person art war history party result morning reason
		research girl guy moment air teacher force education product price market
		customer software computer phone data report problem country state family
		student group food news movie film music experience quality support staff
		weather university bank hospital weekend evening afternoon street river
		mountain village country language text sentence document analysis`)

	addAux(`ca wo sha`)

	// Words that are common as both nouns and verbs. The primary tag is
	// used unless the left context says otherwise.
	addAlt(TagVerb, TagNoun, `run go make love hate like look help use need want
		work play walk talk call move turn start show try leave feel seem keep
		let put mean become begin bring hold write stand hear live believe
		happen provide sit lose pay meet include continue set learn change lead
		understand watch follow stop create speak read allow add spend grow offer
		remember consider appear buy wait serve die send expect build stay fall
		cut reach kill remain suggest raise pass sell require report decide pull
		found founded announce announced release released launch launched open
		visit cost drive answer hope plan fear doubt dream fly rain sleep smile
		cry laugh fight jump kiss cook clean drink eat give take get come see
		know think say tell ask find`)
	addAlt(TagNoun, TagVerb, `need place book order point process record
		result control review test design benefit increase decrease demand
		experience support return claim charge share view care plant attack
		access focus matter value interest lack balance estimate influence`)

	// Irregular past forms that would not be caught by the -ed rule.
	add(TagVerb, `went made said saw knew thought told asked found became began
		brought held wrote stood heard sat lost paid met led understood spoke
		read grew bought sent built fell kept left felt meant took gave got came
		ran won sold caught taught fought drove ate drank flew slept`)

	return lex
}
