package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera IDs curtos para snapshots e registros semeados
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 8)
}

// GeneratePrefixedID gera um ID no formato "<prefix>_<nanoid>"
func GeneratePrefixedID(prefix string) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}

	return prefix + "_" + id, nil
}
