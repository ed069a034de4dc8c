package cryptoutils

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
)

// RSAKeyBits is the modulus size of generated keys.
const RSAKeyBits = 4096

// NativeGenerator creates self-signed certificates in-process with crypto/x509.
// It needs no external tools.
type NativeGenerator struct {
	// Now defaults to time.Now.
	Now func() time.Time
	// Rand defaults to crypto/rand.Reader.
	Rand io.Reader
}

// NewNativeGenerator creates a generator using the system clock and crypto/rand.
func NewNativeGenerator() *NativeGenerator {
	return &NativeGenerator{Now: time.Now, Rand: rand.Reader}
}

// Name returns "native".
func (g *NativeGenerator) Name() string { return "native" }

// RequiredTools returns nil; no external tools are used.
func (g *NativeGenerator) RequiredTools() []string { return nil }

// Generate writes a PKCS#8 RSA private key and a SHA-256 signed self-signed
// certificate. The key file is created with mode 0600 and the certificate with
// 0644; neither file may already exist.
func (g *NativeGenerator) Generate(ctx context.Context, req interfaces.CertificateRequest) error {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	notBefore := now().UTC().Truncate(time.Second)

	if err := req.ValidateAt(notBefore); err != nil {
		return err
	}

	subject, err := ParseSubject(req.Subject)
	if err != nil {
		return err
	}

	sans, err := ParseSubjectAltName(req.SubjectAltName)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	random := g.Rand
	if random == nil {
		random = rand.Reader
	}
	privateKey, err := rsa.GenerateKey(random, RSAKeyBits)
	if err != nil {
		return fmt.Errorf("could not generate RSA key: %w", err)
	}

	serial, err := rand.Int(random, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return fmt.Errorf("could not generate serial number: %w", err)
	}

	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               subject,
		NotBefore:             notBefore,
		NotAfter:              notBefore.AddDate(0, 0, req.Days),
		SignatureAlgorithm:    x509.SHA256WithRSA,
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              sans.DNSNames,
		IPAddresses:           sans.IPAddresses,
		EmailAddresses:        sans.EmailAddresses,
		URIs:                  sans.URIs,
	}

	certDER, err := x509.CreateCertificate(random, template, template, &privateKey.PublicKey, privateKey)
	if err != nil {
		return fmt.Errorf("could not create certificate: %w", err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return fmt.Errorf("could not marshal private key: %w", err)
	}

	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})

	if err := writeNewFile(req.KeyPath, keyPEM, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", req.KeyPath, err)
	}
	if err := writeNewFile(req.CertPath, certPEM, 0o644); err != nil {
		os.Remove(req.KeyPath)
		return fmt.Errorf("failed to write %s: %w", req.CertPath, err)
	}

	return nil
}

// LoadCertificate reads the first CERTIFICATE block of a PEM file.
func LoadCertificate(path string) (*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return nil, errors.New("no CERTIFICATE block found")
		}
		if block.Type == "CERTIFICATE" {
			return x509.ParseCertificate(block.Bytes)
		}
	}
}

// writeNewFile creates path with perm, failing if it exists. The mode is set
// at creation so the content is never exposed with looser bits.
func writeNewFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
