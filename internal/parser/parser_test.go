package parser

import "testing"

func TestNormaliseInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  INVENTRY  ", want: "inventry"},
		{in: "take-off   CLOAK!!", want: "take off cloak"},
		{in: "vampire's tooth", want: "vampire s tooth"},
		{in: "\t?!\n", want: ""},
	}
	for _, tc := range tests {
		if got := normaliseInput(tc.in); got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestQuantityTokens(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		unit string
	}{
		{in: "12", n: 12, unit: "count"},
		{in: "30t", n: 30, unit: "turns"},
		{in: "5turns", n: 5, unit: "turns"},
	}
	for _, tc := range tests {
		q := parseQuantityToken(tc.in)
		if q == nil {
			t.Fatalf("expected quantity for %q", tc.in)
		}
		if q.N != tc.n || q.Unit != tc.unit {
			t.Fatalf("expected %d %s for %q, got %d %s", tc.n, tc.unit, tc.in, q.N, q.Unit)
		}
	}
	for _, word := range []string{"troll", "5x", "cat"} {
		if parseQuantityToken(word) != nil {
			t.Fatalf("expected no quantity for %q", word)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := similarity("dragon", "dragon"); got != exactScore {
		t.Fatalf("expected exact score, got %.2f", got)
	}
	if got := similarity("drag", "dragon"); got != prefixScore {
		t.Fatalf("expected prefix score, got %.2f", got)
	}
	if got := similarity("dragn", "dragon"); got <= 0.6 || got >= prefixScore {
		t.Fatalf("expected a fuzzy score between 0.6 and prefix, got %.2f", got)
	}
	if got := similarity("bat", "statue"); got != 0 {
		t.Fatalf("expected no match, got %.2f", got)
	}
}

func TestAliasInvMapsToInventory(t *testing.T) {
	intent := New().Parse(ParseContext{}, "inv")
	if intent.Verb != "inventory" || intent.Kind != Query {
		t.Fatalf("expected inventory query, got %q kind %d", intent.Verb, intent.Kind)
	}
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
}

func TestTypoInventryMapsToInventory(t *testing.T) {
	intent := New().Parse(ParseContext{}, "inventry")
	if intent.Verb != "inventory" {
		t.Fatalf("expected inventory verb, got %q", intent.Verb)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestCloseVerbsAskWhichOne(t *testing.T) {
	intent := New().Parse(ParseContext{}, "sl")
	if intent.Clarify == nil || len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected a two-way question, got %+v", intent.Clarify)
	}
	if intent.Clarify.Options[0].Verb != "slow" || intent.Clarify.Options[1].Verb != "wait" {
		t.Fatalf("expected slow then wait, got %q and %q", intent.Clarify.Options[0].Verb, intent.Clarify.Options[1].Verb)
	}
}

func TestUnknownInputListsCommands(t *testing.T) {
	intent := New().Parse(ParseContext{}, "zzzzzz")
	if intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected unknown intent with a question, got %+v", intent)
	}
}

func TestWearResolvesInventoryItem(t *testing.T) {
	ctx := ParseContext{Inventory: []string{"leather armour", "bread ration"}}
	intent := New().Parse(ctx, "wear lether armour")
	if intent.Verb != "wear" {
		t.Fatalf("expected wear verb, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "leather armour" {
		t.Fatalf("expected leather armour, got %+v", intent.Args)
	}
}

func TestWearWithoutTargetOffersOptions(t *testing.T) {
	ctx := ParseContext{Inventory: []string{"cloak", "robe"}}
	intent := New().Parse(ctx, "wear")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for target-less wear")
	}
	if len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected 2 clarify options, got %d", len(intent.Clarify.Options))
	}
	if got := IntentToCommandString(intent.Clarify.Options[0]); got != "wear cloak" {
		t.Fatalf("expected wear cloak option, got %q", got)
	}
}

func TestWearAmbiguousRingAsks(t *testing.T) {
	ctx := ParseContext{Inventory: []string{"ring of fire", "ring of ice"}}
	intent := New().Parse(ctx, "wear ring")
	if intent.Clarify == nil || len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected a choice between the rings, got %+v", intent.Clarify)
	}

	intent = New().Parse(ctx, "wear ring of ice")
	if intent.Clarify != nil || len(intent.Args) != 1 || intent.Args[0] != "ring of ice" {
		t.Fatalf("expected ring of ice, got %+v", intent)
	}
}

func TestRemoveAcceptsSlotNames(t *testing.T) {
	ctx := ParseContext{Slots: []string{"amulet", "left ring", "right ring"}}
	intent := New().Parse(ctx, "remove left rng")
	if got := IntentToCommandString(intent); got != "remove left ring" {
		t.Fatalf("expected remove left ring, got %q", got)
	}
}

func TestEatSeesFloorItems(t *testing.T) {
	ctx := ParseContext{Nearby: []string{"rat chunk"}}
	intent := New().Parse(ctx, "eat rat chnk")
	if got := IntentToCommandString(intent); got != "eat rat chunk" {
		t.Fatalf("expected eat rat chunk, got %q", got)
	}
}

func TestTransformUsesFormVocabulary(t *testing.T) {
	ctx := ParseContext{Forms: []string{"spider", "bat", "dragon", "statue"}}
	intent := New().Parse(ctx, "transform dragn 40")
	if intent.Verb != "transform" {
		t.Fatalf("expected transform verb, got %q", intent.Verb)
	}
	if got := IntentToCommandString(intent); got != "transform dragon 40" {
		t.Fatalf("expected canonical command, got %q", got)
	}
}

func TestGiveMultiWordCatalogItem(t *testing.T) {
	ctx := ParseContext{Catalog: []string{"bread ration", "meat ration", "royal jelly"}}
	intent := New().Parse(ctx, "wish bred ration 3")
	if got := IntentToCommandString(intent); got != "give bread ration 3" {
		t.Fatalf("expected give bread ration 3, got %q", got)
	}
}

func TestDrainMapsStatAbbreviation(t *testing.T) {
	intent := New().Parse(ParseContext{}, "drain dex 3")
	if got := IntentToCommandString(intent); got != "drain dexterity 3" {
		t.Fatalf("expected drain dexterity 3, got %q", got)
	}
}

func TestGainCarriesAmountAsQuantity(t *testing.T) {
	intent := New().Parse(ParseContext{}, "gain 500")
	if intent.Quantity == nil || intent.Quantity.N != 500 {
		t.Fatalf("expected quantity 500, got %+v", intent.Quantity)
	}
	if got := IntentToCommandString(intent); got != "gain 500" {
		t.Fatalf("expected gain 500, got %q", got)
	}
}

func TestFreeTextHungerInfersEat(t *testing.T) {
	intent := New().Parse(ParseContext{}, "ugh, I'm starving right now")
	if intent.Verb != "eat" {
		t.Fatalf("expected eat inference, got %q", intent.Verb)
	}
}

func TestFreeTextTakeOff(t *testing.T) {
	ctx := ParseContext{Inventory: []string{"cloak", "ring of protection"}}
	intent := New().Parse(ctx, "please pull off the cloak")
	if intent.Verb != "remove" {
		t.Fatalf("expected remove inference, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "cloak" {
		t.Fatalf("expected cloak, got %+v", intent.Args)
	}
}

func TestFreeTextRestCarriesTurns(t *testing.T) {
	intent := New().Parse(ParseContext{}, "could I rest for 5 turns")
	if got := IntentToCommandString(intent); got != "wait 5" {
		t.Fatalf("expected wait 5, got %q", got)
	}
}

func TestPronounResolutionEatIt(t *testing.T) {
	ctx := ParseContext{
		Inventory:  []string{"royal jelly"},
		LastEntity: "royal jelly",
	}
	intent := New().Parse(ctx, "eat it")
	if intent.Clarify != nil {
		t.Fatalf("unexpected clarify: %+v", intent.Clarify)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "royal jelly" {
		t.Fatalf("expected pronoun to resolve to royal jelly, got %+v", intent.Args)
	}
}

func TestPronounWithoutReferentAsks(t *testing.T) {
	intent := New().Parse(ParseContext{}, "wield it")
	if intent.Clarify == nil {
		t.Fatalf("expected a question for an unresolved pronoun")
	}
}

func TestIntentToCommandStringNeedsVerb(t *testing.T) {
	if got := IntentToCommandString(Intent{Args: []string{"cloak"}}); got != "" {
		t.Fatalf("expected empty command, got %q", got)
	}
}
