package ipc

import (
	"fmt"

	"github.com/bnema/wlcinput/input"
)

// InputHandler answers requests from the pointer and keyboard services.
// The services must sit on a serialized subsystem, see input.Serialized.
type InputHandler struct {
	pointer  *input.Pointer
	keyboard *input.Keyboard
	backend  string
}

// NewInputHandler creates a handler for the named backend
func NewInputHandler(pointer *input.Pointer, keyboard *input.Keyboard, backend string) *InputHandler {
	return &InputHandler{pointer: pointer, keyboard: keyboard, backend: backend}
}

func (h *InputHandler) Handle(req *Request) *Response {
	switch req.Type {
	case MessageTypeStatus:
		return &Response{Type: MessageTypeStatus, Backend: h.backend}

	case MessageTypePointerPosition:
		pos := h.pointer.Position()
		return &Response{Type: MessageTypePointerPosition, X: pos.X, Y: pos.Y}

	case MessageTypeSetPointerPosition:
		h.pointer.SetPosition(input.Point{X: req.X, Y: req.Y})
		pos := h.pointer.Position()
		return &Response{Type: MessageTypeSetPointerPosition, X: pos.X, Y: pos.Y}

	case MessageTypeCurrentKeys:
		return &Response{Type: MessageTypeCurrentKeys, Keys: h.keyboard.CurrentKeys()}

	case MessageTypeKeysym:
		ks := h.keyboard.KeysymForKey(req.Key, requestModifiers(req))
		return &Response{Type: MessageTypeKeysym, Keysym: ks.Code(), KeysymName: ks.Name()}

	case MessageTypeUTF32:
		return &Response{Type: MessageTypeUTF32, UTF32: h.keyboard.UTF32ForKey(req.Key, requestModifiers(req))}
	}

	return NewErrorResponse(fmt.Sprintf("unsupported request: %s", req.Type))
}

func requestModifiers(req *Request) input.KeyModifiers {
	return input.NewKeyModifiers(input.Modifiers(req.Mods), input.Leds(req.Leds))
}
