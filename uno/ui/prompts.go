package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
)

const drawCommand = "draw"

// PromptString keeps asking until a non-empty line is entered.
func (c *Console) PromptString(message string) (string, error) {
	for {
		c.Print(message)
		input, err := c.ReadLine()
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		if input == "" {
			continue
		}
		return input, nil
	}
}

// PromptCardIndexOrDraw returns draw == true for the draw command, otherwise
// the entered index. The index is not checked against the hand.
func (c *Console) PromptCardIndexOrDraw() (index int, draw bool, err error) {
	for {
		input, err := c.PromptString(msg.Message.CardSelectionPrompt())
		if err != nil {
			return 0, false, err
		}
		if strings.EqualFold(input, drawCommand) || strings.EqualFold(input, drawCommand[:1]) {
			return 0, true, nil
		}
		index, err := strconv.Atoi(input)
		if err != nil {
			c.Print(msg.Message.InvalidInput(input))
			continue
		}
		return index, false, nil
	}
}

func (c *Console) PromptColor() (color.Color, error) {
	for {
		colorName, err := c.PromptString(msg.Message.ColorSelectionPrompt())
		if err != nil {
			return color.None, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			c.Print(msg.Message.UnknownColor(colorName))
			continue
		}
		return chosenColor, nil
	}
}
