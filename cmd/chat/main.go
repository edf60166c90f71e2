// Command chat is a terminal client for the portfolio chat backend. It
// drives one conversation per run with the same turn lifecycle as the
// web widget.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"portfolio-backend/internal/chat"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "chat backend base URL")
	timeout := flag.Duration("timeout", 30*time.Second, "per-turn timeout")
	flag.Parse()

	conv := chat.NewConversation(chat.DefaultWelcome)
	session := chat.NewSession(conv, chat.NewClient(*baseURL, *timeout))

	rl, err := readline.New("you> ")
	if err != nil {
		log.Fatalf("Failed to initialize input: %v", err)
	}
	defer rl.Close()

	printLatest(conv, 0)
	seen := len(conv.Messages())

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return
			}
			log.Fatalf("Input error: %v", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := session.Submit(context.Background(), line); err != nil {
			if errors.Is(err, chat.ErrTurnInFlight) {
				fmt.Println("(still waiting for the previous reply)")
				continue
			}
			log.Fatalf("Submit failed: %v", err)
		}

		seen = printLatest(conv, seen)
	}
}

// printLatest renders messages appended since the last call and returns
// the new high-water mark.
func printLatest(conv *chat.Conversation, seen int) int {
	msgs := conv.Messages()
	for _, msg := range msgs[seen:] {
		switch msg.Sender {
		case chat.SenderUser:
			// Already echoed by the prompt.
		case chat.SenderError:
			fmt.Printf("error> %s\n", msg.Content)
		default:
			fmt.Printf("bot> %s\n", msg.Content)
		}
	}
	return len(msgs)
}
