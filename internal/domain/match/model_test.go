package match

import (
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
)

func TestParseTimestamp(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	cases := []struct {
		raw     string
		zoned   bool
		wantMSK string
	}{
		{raw: "2025-01-15T19:30:00", zoned: false, wantMSK: "2025-01-15 19:30"},
		{raw: "2025-01-15T19:30", zoned: false, wantMSK: "2025-01-15 19:30"},
		{raw: "2025-01-15 19:30:00", zoned: false, wantMSK: "2025-01-15 19:30"},
		{raw: "2025-01-15T16:30:00Z", zoned: true, wantMSK: "2025-01-15 19:30"},
		{raw: "2025-01-15T19:30:00+03:00", zoned: true, wantMSK: "2025-01-15 19:30"},
	}
	for _, tc := range cases {
		got, err := ParseTimestamp(tc.raw)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", tc.raw, err)
		}
		if got.Zoned != tc.zoned {
			t.Fatalf("ParseTimestamp(%q).Zoned = %v, want %v", tc.raw, got.Zoned, tc.zoned)
		}
		if formatted := got.In(moscow).Format("2006-01-02 15:04"); formatted != tc.wantMSK {
			t.Fatalf("ParseTimestamp(%q) in MSK = %s, want %s", tc.raw, formatted, tc.wantMSK)
		}
	}

	if _, err := ParseTimestamp("15.01.2025"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	blank, err := ParseTimestamp("  ")
	if err != nil || !blank.IsZero() {
		t.Fatalf("expected zero timestamp for blank input, got %v (%v)", blank, err)
	}
}

func TestMatchJSON_NullScoresAndDate(t *testing.T) {
	var item Match
	payload := []byte(`{"id":7,"home_team":"Alpha","away_team":"Beta","match_date":null,"home_score":null,"away_score":0,"status":"finished"}`)
	if err := sonic.Unmarshal(payload, &item); err != nil {
		t.Fatalf("decode match: %v", err)
	}
	if !item.MatchDate.IsZero() {
		t.Fatalf("expected zero match date, got %v", item.MatchDate)
	}
	if item.HomeScore != nil {
		t.Fatalf("expected nil home score, got %d", *item.HomeScore)
	}
	if item.AwayScore == nil || *item.AwayScore != 0 {
		t.Fatalf("expected literal zero away score, got %v", item.AwayScore)
	}
	if !item.Status.IsFinished() {
		t.Fatalf("expected finished status, got %q", item.Status)
	}
}

func TestMatchJSON_CreatePayload(t *testing.T) {
	date, err := ParseTimestamp("2025-02-01T18:00")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	body, err := sonic.Marshal(Match{HomeTeamID: 1, AwayTeamID: 2, MatchDate: date, Status: StatusScheduled})
	if err != nil {
		t.Fatalf("encode match: %v", err)
	}

	var decoded map[string]any
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if decoded["match_date"] != "2025-02-01T18:00:00" {
		t.Fatalf("unexpected match_date: %v", decoded["match_date"])
	}
	if _, ok := decoded["id"]; ok {
		t.Fatalf("create payload must not carry an id: %s", body)
	}
	if decoded["home_score"] != nil || decoded["away_score"] != nil {
		t.Fatalf("expected null scores, got %s", body)
	}
}

func TestMatchValidate(t *testing.T) {
	date, _ := ParseTimestamp("2025-02-01T18:00")
	valid := Match{HomeTeamID: 1, AwayTeamID: 2, MatchDate: date}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid match, got %v", err)
	}

	missingDate := Match{HomeTeamID: 1, AwayTeamID: 2}
	if err := missingDate.Validate(); err == nil {
		t.Fatalf("expected error for missing date")
	}

	badStatus := Match{HomeTeamID: 1, AwayTeamID: 2, MatchDate: date, Status: "postponed"}
	if err := badStatus.Validate(); err == nil {
		t.Fatalf("expected error for unsupported status")
	}
}

func TestNormalizeStatus(t *testing.T) {
	if got := NormalizeStatus(""); got != StatusScheduled {
		t.Fatalf("expected scheduled for blank, got %q", got)
	}
	if got := NormalizeStatus(" Finished "); got != StatusFinished {
		t.Fatalf("expected finished, got %q", got)
	}
}
