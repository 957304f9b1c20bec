package services

import (
	"testing"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/model"
	"github.com/lumina-arg/lumina_api/shared"
)

func boolPtr(b bool) *bool { return &b }

func registerUser(t *testing.T, env *testEnv, username string) uint {
	t.Helper()
	resp, err := env.auth.Register(dto.RegisterRequest{Username: username, Password: "secret1"})
	if err != nil {
		t.Fatalf("Register %s failed: %v", username, err)
	}
	return resp.ID
}

func createContact(t *testing.T, env *testEnv, userID uint, name string) uint {
	t.Helper()
	contact, err := env.chat.CreateContact(userID, dto.CreateContactRequest{Name: name})
	if err != nil {
		t.Fatalf("CreateContact %s failed: %v", name, err)
	}
	return contact.ID
}

func TestCreateContactDefaults(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")

	contact, err := env.chat.CreateContact(alice, dto.CreateContactRequest{Name: "Bob"})
	if err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}

	if contact.Avatar != shared.DefaultAvatar {
		t.Errorf("Expected default avatar %q, got %q", shared.DefaultAvatar, contact.Avatar)
	}
	if contact.Gradient != shared.DefaultGradient {
		t.Errorf("Expected default gradient, got %q", contact.Gradient)
	}
	if contact.Online {
		t.Error("New contact should default to offline")
	}
	if contact.Status != shared.DefaultStatus {
		t.Errorf("Expected status %q, got %q", shared.DefaultStatus, contact.Status)
	}
}

func TestContactOwnershipReadsAsNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	mallory := registerUser(t, env, "mallory")

	bobID := createContact(t, env, alice, "Bob")

	checks := []struct {
		name string
		call func() error
	}{
		{"GetContact", func() error { _, err := env.chat.GetContact(bobID, mallory); return err }},
		{"GetMessages", func() error { _, err := env.chat.GetMessages(bobID, mallory, 0); return err }},
		{"UnreadCount", func() error { _, err := env.chat.UnreadCount(bobID, mallory); return err }},
		{"ClearMessages", func() error { return env.chat.ClearMessages(bobID, mallory) }},
		{"CreateMessage", func() error {
			_, err := env.chat.CreateMessage(mallory, dto.CreateMessageRequest{ContactID: bobID, Content: "hi"})
			return err
		}},
	}

	for _, tc := range checks {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if err == nil {
				t.Fatal("Expected cross-account access to fail")
			}
			appErr, ok := shared.GetAppError(err)
			if !ok || appErr.StatusCode != 404 {
				t.Errorf("Ownership miss must be 404, got %v", err)
			}
		})
	}
}

func TestSendAndListMessages(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	bobID := createContact(t, env, alice, "Bob")

	sent, err := env.chat.CreateMessage(alice, dto.CreateMessageRequest{
		ContactID: bobID,
		Content:   "hi",
		Sent:      boolPtr(true),
	})
	if err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}
	if !sent.Sent || sent.Seen {
		t.Errorf("Expected sent=true seen=false, got %+v", sent)
	}

	messages, err := env.chat.GetMessages(bobID, alice, 0)
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if messages[0].Content != "hi" || !messages[0].Sent {
		t.Errorf("Unexpected message: %+v", messages[0])
	}
}

func TestSentDefaultsToTrue(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	bobID := createContact(t, env, alice, "Bob")

	msg, err := env.chat.CreateMessage(alice, dto.CreateMessageRequest{ContactID: bobID, Content: "hi"})
	if err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}
	if !msg.Sent {
		t.Error("Omitted sent flag must default to true")
	}
}

func TestGetMessagesMarksReceivedSeen(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	bobID := createContact(t, env, alice, "Bob")

	if _, err := env.chat.CreateMessage(alice, dto.CreateMessageRequest{
		ContactID: bobID,
		Content:   "incoming",
		Sent:      boolPtr(false),
	}); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	count, err := env.chat.UnreadCount(bobID, alice)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 unread, got %d", count)
	}

	messages, err := env.chat.GetMessages(bobID, alice, 0)
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if !messages[0].Seen {
		t.Error("Reading the thread must mark received messages seen")
	}

	count, _ = env.chat.UnreadCount(bobID, alice)
	if count != 0 {
		t.Errorf("Expected 0 unread after read, got %d", count)
	}

	// Idempotent: a second read changes nothing
	if _, err := env.chat.GetMessages(bobID, alice, 0); err != nil {
		t.Fatalf("Second GetMessages failed: %v", err)
	}
	count, _ = env.chat.UnreadCount(bobID, alice)
	if count != 0 {
		t.Errorf("Unread count must stay 0, got %d", count)
	}
}

func TestTotalUnreadIsSumOfContacts(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	mallory := registerUser(t, env, "mallory")

	bobID := createContact(t, env, alice, "Bob")
	carolID := createContact(t, env, alice, "Carol")
	otherID := createContact(t, env, mallory, "Other")

	for i := 0; i < 2; i++ {
		env.chat.CreateMessage(alice, dto.CreateMessageRequest{ContactID: bobID, Content: "b", Sent: boolPtr(false)})
	}
	env.chat.CreateMessage(alice, dto.CreateMessageRequest{ContactID: carolID, Content: "c", Sent: boolPtr(false)})
	env.chat.CreateMessage(mallory, dto.CreateMessageRequest{ContactID: otherID, Content: "x", Sent: boolPtr(false)})

	total, err := env.chat.TotalUnreadCount(alice)
	if err != nil {
		t.Fatalf("TotalUnreadCount failed: %v", err)
	}

	contacts, err := env.chat.GetContacts(alice)
	if err != nil {
		t.Fatalf("GetContacts failed: %v", err)
	}
	var sum int64
	for _, c := range contacts {
		sum += c.UnreadCount
	}

	if total != sum {
		t.Errorf("Total unread %d must equal per-contact sum %d", total, sum)
	}
	if total != 3 {
		t.Errorf("Expected 3 unread for alice, got %d", total)
	}
}

func TestCreateMessageAppendsAuditLog(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	bobID := createContact(t, env, alice, "Bob")

	env.chat.CreateMessage(alice, dto.CreateMessageRequest{ContactID: bobID, Content: "player says hi"})
	env.chat.CreateMessage(alice, dto.CreateMessageRequest{ContactID: bobID, Content: "incoming", Sent: boolPtr(false)})

	var entries []model.PlayerSentMessage
	if err := env.db.Find(&entries).Error; err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 audit entry (received messages are not audited), got %d", len(entries))
	}
	if entries[0].Username != "alice" || entries[0].ContactName != "Bob" || entries[0].Message != "player says hi" {
		t.Errorf("Unexpected audit entry: %+v", entries[0])
	}
}

func TestClearMessagesKeepsAuditLog(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	bobID := createContact(t, env, alice, "Bob")

	env.chat.CreateMessage(alice, dto.CreateMessageRequest{ContactID: bobID, Content: "hi"})

	if err := env.chat.ClearMessages(bobID, alice); err != nil {
		t.Fatalf("ClearMessages failed: %v", err)
	}

	messages, _ := env.chat.GetMessages(bobID, alice, 0)
	if len(messages) != 0 {
		t.Errorf("Expected empty thread, got %d messages", len(messages))
	}

	var auditCount int64
	env.db.Model(&model.PlayerSentMessage{}).Count(&auditCount)
	if auditCount != 1 {
		t.Errorf("Audit log must survive a thread clear, got %d entries", auditCount)
	}
}

func TestDeleteMessage(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	mallory := registerUser(t, env, "mallory")
	bobID := createContact(t, env, alice, "Bob")

	msg, err := env.chat.CreateMessage(alice, dto.CreateMessageRequest{ContactID: bobID, Content: "hi"})
	if err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	// Cross-account delete is a 404
	err = env.chat.DeleteMessage(msg.ID, mallory)
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 404 {
		t.Errorf("Expected 404 on cross-account delete, got %v", err)
	}

	if err := env.chat.DeleteMessage(msg.ID, alice); err != nil {
		t.Fatalf("DeleteMessage failed: %v", err)
	}
	messages, _ := env.chat.GetMessages(bobID, alice, 0)
	if len(messages) != 0 {
		t.Errorf("Expected empty thread after delete, got %d", len(messages))
	}
}

func TestCreateMessageRejectsBlankContent(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	bobID := createContact(t, env, alice, "Bob")

	_, err := env.chat.CreateMessage(alice, dto.CreateMessageRequest{ContactID: bobID, Content: "   "})
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 400 {
		t.Errorf("Expected 400 for blank content, got %v", err)
	}
}

func TestGetMessagesDefaultLimit(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	bobID := createContact(t, env, alice, "Bob")

	for i := 0; i < 55; i++ {
		if _, err := env.chat.CreateMessage(alice, dto.CreateMessageRequest{ContactID: bobID, Content: "m"}); err != nil {
			t.Fatalf("CreateMessage %d failed: %v", i, err)
		}
	}

	messages, err := env.chat.GetMessages(bobID, alice, 0)
	if err != nil {
		t.Fatalf("GetMessages failed: %v", err)
	}
	if len(messages) != 50 {
		t.Errorf("Omitted limit must default to 50, got %d", len(messages))
	}

	messages, err = env.chat.GetMessages(bobID, alice, 10)
	if err != nil {
		t.Fatalf("GetMessages with limit failed: %v", err)
	}
	if len(messages) != 10 {
		t.Errorf("Explicit limit must be honored, got %d", len(messages))
	}
}

func TestContactListDerivesLastMessage(t *testing.T) {
	env := newTestEnv(t)
	alice := registerUser(t, env, "alice")
	bobID := createContact(t, env, alice, "Bob")

	env.chat.CreateMessage(alice, dto.CreateMessageRequest{ContactID: bobID, Content: "first"})
	env.chat.CreateMessage(alice, dto.CreateMessageRequest{ContactID: bobID, Content: "second"})

	contacts, err := env.chat.GetContacts(alice)
	if err != nil {
		t.Fatalf("GetContacts failed: %v", err)
	}
	for _, c := range contacts {
		if c.ID == bobID && c.LastMessage != "second" {
			t.Errorf("Expected last message %q, got %q", "second", c.LastMessage)
		}
	}
}
