package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// PhonemeFile is the YAML layout of a phoneme file:
//
//	onsets: BDGKLMNPRST
//	vowels: AEIOU
//	codas: NRS
//
// Omitted keys keep the defaults.
type PhonemeFile struct {
	Onsets string `yaml:"onsets"`
	Vowels string `yaml:"vowels"`
	Codas  string `yaml:"codas"`
}

// LoadPhonemeFile reads a phoneme file from path.
func LoadPhonemeFile(path string) (PhonemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PhonemeFile{}, errors.Join(ErrReadingPhonemeFile, err)
	}

	var f PhonemeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return PhonemeFile{}, errors.Join(ErrParsingPhonemeFile, err)
	}
	return f, nil
}
