package chat

import "testing"

func TestExchangeLines(t *testing.T) {
	e := Exchange{User: "total goals", Bot: "A total of 2414 goals were scored."}
	if e.UserLine() != "You: total goals" {
		t.Fatalf("unexpected user line %q", e.UserLine())
	}
	if e.BotLine() != "Bot: A total of 2414 goals were scored." {
		t.Fatalf("unexpected bot line %q", e.BotLine())
	}
}
