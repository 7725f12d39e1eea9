// SPDX-License-Identifier: LGPL-3.0-or-later

package bridge

import "encoding/json"

// dispatchDirect delivers a validated direct message to peer-specific
// handlers, the wildcard handler set, and — when type is agent-response
// — the topic peer:{message.to}, all synchronously and in registration
// order, per spec.md section 4.4.
func (b *Bridge) dispatchDirect(msg Message) {
	for _, h := range b.peerHandlers[msg.From] {
		h(msg)
	}
	for _, h := range b.wildcardHandlers {
		h(msg)
	}
	if msg.Type == TypeAgentResponse {
		b.dispatchTopic("peer:"+msg.To, msg.Payload)
	}
}

// dispatchTopic delivers a validated broadcast payload to every handler
// registered on topic, synchronously and in registration order.
func (b *Bridge) dispatchTopic(topic string, payload json.RawMessage) {
	for _, h := range b.topicHandlers[topic] {
		h(topic, payload)
	}
}
