// Package signkey resolves the action's own signing key material.
package signkey

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/hex"
	"fmt"
)

const (
	TypeEd25519 = "ed25519"
	TypeECDSA   = "ecdsa"
)

// KeyPair holds the signing key the action publishes in its metadata.
type KeyPair struct {
	Type    string
	Private crypto.Signer
}

// Resolve builds the signing key pair for the configured type. A fresh key is
// generated when material is empty; an unsupported type is a fatal startup
// error upstream.
func Resolve(keyType, material string) (*KeyPair, error) {
	switch keyType {
	case TypeEd25519:
		return resolveEd25519(material)
	case TypeECDSA:
		return resolveECDSA(material)
	default:
		return nil, fmt.Errorf("unsupported signing key type %q", keyType)
	}
}

// PublicKeyHex is the PKIX DER form of the public key, hex encoded.
func (k *KeyPair) PublicKeyHex() string {
	der, err := x509.MarshalPKIXPublicKey(k.Private.Public())
	if err != nil {
		return ""
	}
	return hex.EncodeToString(der)
}

func resolveEd25519(material string) (*KeyPair, error) {
	if material == "" {
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		return &KeyPair{Type: TypeEd25519, Private: priv}, nil
	}
	seed, err := hex.DecodeString(material)
	if err != nil {
		return nil, fmt.Errorf("cannot decode ed25519 signing key: %v", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("ed25519 signing key must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return &KeyPair{Type: TypeEd25519, Private: ed25519.NewKeyFromSeed(seed)}, nil
}

func resolveECDSA(material string) (*KeyPair, error) {
	if material == "" {
		priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			return nil, err
		}
		return &KeyPair{Type: TypeECDSA, Private: priv}, nil
	}
	der, err := hex.DecodeString(material)
	if err != nil {
		return nil, fmt.Errorf("cannot decode ecdsa signing key: %v", err)
	}
	priv, err := x509.ParseECPrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("cannot parse ecdsa signing key: %v", err)
	}
	return &KeyPair{Type: TypeECDSA, Private: priv}, nil
}
