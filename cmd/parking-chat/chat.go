package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	handleTurnUC "github.com/m04kA/SMC-ParkingService/internal/usecase/handle_turn"
)

// TurnHandler обработка одного сообщения
type TurnHandler interface {
	Execute(ctx context.Context, req *handleTurnUC.Request) (*handleTurnUC.Response, error)
}

const banner = `Central Garage parking assistant.
Ask about location, hours, prices; or provide reservation details to submit.
Example: 'name: John; surname: Doe; car_number: AB-1234; period_start: 2025-02-22 09:00; period_end: 2025-02-22 17:00'
Type 'quit' or 'exit' to end.
`

// chat читает сообщения построчно, пустые строки пропускаются
func chat(ctx context.Context, turns TurnHandler, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, banner+"\n")
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		switch strings.ToLower(message) {
		case "quit", "exit", "q":
			fmt.Fprintln(out, "Goodbye.")
			return nil
		}

		resp, err := turns.Execute(ctx, &handleTurnUC.Request{Message: message})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Assistant: %s\n\n", resp.Reply)
	}

	fmt.Fprintln(out, "Goodbye.")
	return scanner.Err()
}
