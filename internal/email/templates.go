package email

import "fmt"

// MatchNotification builds the "it's a match" message sent to both parties
// once a triple becomes mutual.
func MatchNotification(recipientName, otherPartyName, jobTitle string) *Message {
	body := fmt.Sprintf(
		"Hi %s,\n\nGood news: you and %s both expressed interest for \"%s\".\n"+
			"You can now message each other and set up an interview.\n\n"+
			"- The CareSwipe team\n",
		recipientName, otherPartyName, jobTitle,
	)
	return &Message{
		Subject: "It's a match!",
		Body:    body,
	}
}
