package bot

import "testing"

func TestParseCallbackRoundTrip(t *testing.T) {
	verbs := []string{verbApprove, verbDisapprove, verbBan, verbUnban,
		verbPromote, verbDemote, verbUser, verbEdit, verbEditName, verbEditQty, verbEditCat, verbDelete}
	for _, verb := range verbs {
		data := callbackData(verb, 123456789)
		act, err := parseCallback(data)
		if err != nil {
			t.Errorf("parseCallback(%q) err = %v", data, err)
			continue
		}
		if act.Verb != verb || act.TargetID != 123456789 {
			t.Errorf("parseCallback(%q) = %+v", data, act)
		}
	}
}

func TestParseCallbackMalformed(t *testing.T) {
	for _, data := range []string{"", "approve", "approve_", "_5", "approve_abc", "ban_-1", "ban_0"} {
		if _, err := parseCallback(data); err == nil {
			t.Errorf("parseCallback(%q) expected error", data)
		}
	}
}

func TestAdminVerb(t *testing.T) {
	for _, verb := range []string{verbApprove, verbBan, verbPromote, verbUser} {
		if !adminVerb(verb) {
			t.Errorf("adminVerb(%q) = false", verb)
		}
	}
	for _, verb := range []string{verbEdit, verbEditName, verbEditQty, verbEditCat, verbDelete} {
		if adminVerb(verb) {
			t.Errorf("adminVerb(%q) = true", verb)
		}
	}
}
