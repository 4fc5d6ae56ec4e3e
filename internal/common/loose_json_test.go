package common

import "testing"

type agentDoc struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func TestDecodeLooseStrictJSON(t *testing.T) {
	var agent agentDoc
	if err := DecodeLoose(`{"name":"Jane","phone":"555-0100"}`, "contactAgent", &agent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agent.Name != "Jane" || agent.Phone != "555-0100" {
		t.Errorf("unexpected decode result: %+v", agent)
	}
}

func TestDecodeLooseUnquotedKeys(t *testing.T) {
	var agent agentDoc
	if err := DecodeLoose(`{name:"Jane", phone:"555-0100"}`, "contactAgent", &agent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agent.Name != "Jane" {
		t.Errorf("expected name Jane, got %q", agent.Name)
	}
}

func TestDecodeLooseSingleQuotes(t *testing.T) {
	var agent agentDoc
	if err := DecodeLoose(`{'name':'Jane'}`, "contactAgent", &agent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agent.Name != "Jane" {
		t.Errorf("expected name Jane, got %q", agent.Name)
	}
}

func TestDecodeLooseStrictJSONNotRewritten(t *testing.T) {
	// An apostrophe inside a well-formed string must survive because the
	// strict pass wins before any quote replacement.
	var agent agentDoc
	if err := DecodeLoose(`{"name":"O'Hare"}`, "contactAgent", &agent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agent.Name != "O'Hare" {
		t.Errorf("expected name O'Hare, got %q", agent.Name)
	}
}

func TestDecodeLooseRejectsGarbage(t *testing.T) {
	var agent agentDoc
	err := DecodeLoose(`not json at all`, "contactAgent", &agent)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "invalid contactAgent JSON" {
		t.Errorf("unexpected error message %q", err.Error())
	}
}

func TestDecodeLooseRejectsEmpty(t *testing.T) {
	var agent agentDoc
	if err := DecodeLoose("  ", "contactAgent", &agent); err == nil {
		t.Fatal("expected error for empty input")
	}
}
