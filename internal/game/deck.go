package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck template in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name"`
	Cards []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// ParseDeckFile parses a YAML deck file and returns a map of template
// name → card slice. Any unknown card name fails the whole parse.
func ParseDeckFile(path string) (map[string][]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	decks := make(map[string][]*Card)
	for _, deck := range df.Decks {
		cards, err := buildDeck(deck)
		if err != nil {
			return nil, err
		}
		decks[deck.Name] = cards
	}

	return decks, nil
}

// DeckByName returns a fresh copy of the named template from the deck file.
func DeckByName(path, name string) ([]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	for _, deck := range df.Decks {
		if deck.Name == name {
			return buildDeck(deck)
		}
	}
	return nil, fmt.Errorf("deck template %q not found in %s", name, path)
}

// DeckNames lists the template names in file order.
func DeckNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	names := make([]string, 0, len(df.Decks))
	for _, deck := range df.Decks {
		names = append(names, deck.Name)
	}
	return names, nil
}

func buildDeck(deck DeckEntry) ([]*Card, error) {
	var cards []*Card
	for _, entry := range deck.Cards {
		for i := 0; i < entry.Count; i++ {
			card, err := LookupCard(entry.Name)
			if err != nil {
				return nil, fmt.Errorf("deck %q: %w", deck.Name, err)
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}
