package webdriver

import (
	"context"

	"webdrill/domain/entities"
)

// Element is a handle on a DOM node. It keeps a copy of the root Session that
// found it; elements found beneath it belong to that same Session.
type Element struct {
	session Session
	id      string
}

func newElement(s Session, id string) Element {
	return Element{session: s, id: id}
}

// ID returns the server-assigned element identifier.
func (e Element) ID() string {
	return e.id
}

// Session returns the root session owning this element.
func (e Element) Session() Session {
	return e.session
}

// Execute - sends cmd with this element's id injected, then the session id via the owning Session.
// The id stays in the request body alongside the path.
func (e Element) Execute(ctx context.Context, cmd entities.Command, params entities.Params) (interface{}, error) {
	return e.session.Execute(ctx, cmd, params.With(entities.ParamID, e.id))
}

// FindElement - locates the first descendant matching by/value
func (e Element) FindElement(ctx context.Context, by entities.By, value string) (Element, error) {
	resp, err := e.Execute(ctx, entities.FindChildElement, locatorParams(by, value))
	if err != nil {
		return Element{}, err
	}
	id, ok := elementID(resp)
	if !ok {
		return Element{}, entities.NewProtocolViolation(entities.FindChildElement, "value.ELEMENT")
	}
	return newElement(e.session, id), nil
}

// Click - clicks the element
func (e Element) Click(ctx context.Context) error {
	_, err := e.Execute(ctx, entities.ClickElement, nil)
	return err
}

// Clear - clears a text input
func (e Element) Clear(ctx context.Context) error {
	_, err := e.Execute(ctx, entities.ClearElement, nil)
	return err
}

// SendKeys - types text into the element
func (e Element) SendKeys(ctx context.Context, text string) error {
	keys := make([]string, 0, len(text))
	for _, r := range text {
		keys = append(keys, string(r))
	}
	_, err := e.Execute(ctx, entities.SendKeysToElement, entities.Params{
		"value": keys,
		"text":  text,
	})
	return err
}

// Text - returns the visible text of the element
func (e Element) Text(ctx context.Context) (string, error) {
	return stringResult(entities.GetElementText)(e.Execute(ctx, entities.GetElementText, nil))
}

// Attribute - returns the named attribute; a missing attribute yields ""
func (e Element) Attribute(ctx context.Context, name string) (string, error) {
	resp, err := e.Execute(ctx, entities.GetElementAttribute, entities.Params{"name": name})
	if err != nil {
		return "", err
	}
	switch v := field(resp, "value").(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return "", entities.NewProtocolViolation(entities.GetElementAttribute, "string value")
	}
}
