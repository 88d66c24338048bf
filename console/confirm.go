package console

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Confirm asks a yes/no question on the terminal. Anything but an
// explicit yes, including an empty line, counts as no.
func Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)

	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		fmt.Println("Error reading response:", err)
		return false
	}

	response = strings.TrimSpace(response)
	validResponses := []string{"yes", "yep", "y"}
	for _, vr := range validResponses {
		if strings.EqualFold(response, vr) {
			return true
		}
	}

	return false
}
