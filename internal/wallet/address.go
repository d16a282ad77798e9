package wallet

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// DeriveAddress calcule l'adresse Ethereum d'une clé publique secp256k1 :
// les 20 derniers octets du keccak256 de la clé non compressée.
func DeriveAddress(pubKey []byte) (string, error) {
	switch len(pubKey) {
	case 65:
		if pubKey[0] != 0x04 {
			return "", fmt.Errorf("clé publique non compressée attendue (préfixe 0x04)")
		}
		pubKey = pubKey[1:]
	case 64:
	default:
		return "", fmt.Errorf("taille de clé publique invalide : %d", len(pubKey))
	}

	h := sha3.NewLegacyKeccak256()
	h.Write(pubKey)
	sum := h.Sum(nil)

	return "0x" + hex.EncodeToString(sum[12:]), nil
}
