package models

import "github.com/hatchdotlol/cipherpass/pkg/strength"

type Check struct {
	Password string `json:"password"`
}

type Generate struct {
	Length  *int  `json:"length"`
	Lower   *bool `json:"lower"`
	Upper   *bool `json:"upper"`
	Numbers *bool `json:"numbers"`
	Symbols *bool `json:"symbols"`
	Hash    bool  `json:"hash"`
}

type CheckResp = strength.Report

type GenerateResp struct {
	Password    string  `json:"password"`
	Entropy     float64 `json:"entropy"`
	EntropyText string  `json:"entropyText"`
	CrackTime   string  `json:"crackTime"`
	Hash        string  `json:"hash,omitempty"`
}

type PassphraseResp struct {
	Passphrase  string `json:"passphrase"`
	Words       int    `json:"words"`
	Entropy     int    `json:"entropy"`
	EntropyText string `json:"entropyText"`
}

// WordlistSize is an upper bound: entries present both in the loaded list
// and in the sqlite index are counted twice.
type InfoResp struct {
	StartTime    int64  `json:"startTime"`
	Version      string `json:"version"`
	WordlistSize int64  `json:"wordlistSize"`
}
