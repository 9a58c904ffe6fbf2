package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const defaultIDSize = 21

func GenerateID() (string, error) {
	return GenerateIDWithSize(defaultIDSize)
}

func GenerateIDWithSize(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}
