package chatbot

import "testing"

func TestReplyMatchesDefaultCorpus(t *testing.T) {
	bot := New(DefaultCorpus())

	tests := []struct {
		input   string
		want    string
		matched bool
	}{
		{"What dataset is this?", "We are using a FIFA World Cup match results dataset (1930–2014).", true},
		{"WHAT IS THIS about", "This dataset contains World Cup match results with teams, goals, stadiums, rounds, etc.", true},
		{"what's the purpose", "To analyse FIFA World Cup matches and identify trends.", true},
		{"which time period is covered", "Data covers World Cups from 1930 to 2014.", true},
		{"how many rows are there", "The dataset has 852 rows.", true},
		{"list the columns", "Year, Date, Time, Round, Stadium, City, Country, HomeTeam, HomeGoals, AwayGoals, AwayTeam, Observation.", true},
		{"total goals scored?", "A total of 2414 goals were scored.", true},
		{"how different are the teams", "More than 70 national teams are included.", true},
		{"who won in 1930", "Sorry, ask me about dataset, columns, goals, teams, or analysis.", false},
		{"", "Sorry, ask me about dataset, columns, goals, teams, or analysis.", false},
	}

	for _, tt := range tests {
		got, matched := bot.Reply(tt.input)
		if got != tt.want || matched != tt.matched {
			t.Fatalf("Reply(%q) = %q, %v; want %q, %v", tt.input, got, matched, tt.want, tt.matched)
		}
	}
}

func TestReplyUsesOnlyFirstTwoWords(t *testing.T) {
	bot := New(DefaultCorpus())

	// "how many" satisfies the rows entry before the columns entry is reached.
	got, matched := bot.Reply("how many columns?")
	if !matched || got != "The dataset has 852 rows." {
		t.Fatalf("expected the earlier rows answer, got %q", got)
	}

	// "world cup" alone is enough for the tournaments entry.
	got, _ = bot.Reply("tell me about the world cup")
	if got != "Covers 15 different World Cup editions." {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestReplyMatchesSubstrings(t *testing.T) {
	bot := New(Corpus{
		Default: "nope",
		Entries: []Entry{{Question: "Goal", Answer: "goals!"}},
	})
	if got, ok := bot.Reply("GOALKEEPERS"); !ok || got != "goals!" {
		t.Fatalf("expected substring match, got %q %v", got, ok)
	}
}

func TestReplyOrderWins(t *testing.T) {
	bot := New(Corpus{
		Default: "nope",
		Entries: []Entry{
			{Question: "team", Answer: "first"},
			{Question: "team goals", Answer: "second"},
		},
	})
	if got, _ := bot.Reply("team goals"); got != "first" {
		t.Fatalf("expected first entry to win, got %q", got)
	}
}
