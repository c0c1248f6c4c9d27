package api

import (
	"github.com/bwmarrin/discordgo"
)

// Interaction filter types understood by the hosting framework.
const (
	FilterApplicationCommand = "APPLICATION_COMMAND"
	FilterAutocomplete       = "APPLICATION_COMMAND_AUTOCOMPLETE"
	FilterMessageComponent   = "MESSAGE_COMPONENT"
)

// Manifest identifies this action to the hosting framework.
type Manifest struct {
	AppID       string   `json:"appId"`
	Developer   string   `json:"developer"`
	Name        string   `json:"name"`
	ShortName   string   `json:"shortName"`
	Platforms   []string `json:"platforms"`
	Version     string   `json:"version"`
	Description string   `json:"description,omitempty"`
}

// InteractionFilter declares one class of interactions the action claims.
type InteractionFilter struct {
	Type           string   `json:"type"`
	Names          []string `json:"names,omitempty"`
	CustomIDPrefix string   `json:"customIdPrefix,omitempty"`
}

// Metadata is the document served on /metadata: the manifest, the
// supported-interaction filter table and the slash commands to register.
type Metadata struct {
	Manifest              Manifest                        `json:"manifest"`
	SupportedInteractions []InteractionFilter             `json:"supportedInteractions"`
	ApplicationCommands   []*discordgo.ApplicationCommand `json:"applicationCommands"`
	PublicKey             string                          `json:"publicKey,omitempty"`
}
