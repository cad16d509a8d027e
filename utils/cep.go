package utils

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrInvalidCEP  = errors.New("cep must have 8 digits")
	ErrCEPNotFound = errors.New("cep not found")
)

var nonDigits = regexp.MustCompile(`\D`)

type Address struct {
	Cep          string `json:"cep"`
	Street       string `json:"street"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type viaCEPResponse struct {
	Cep         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	Erro        any    `json:"erro"`
}

// CEPClient looks up Brazilian postal codes on ViaCEP.
type CEPClient struct {
	client *resty.Client
}

func NewCEPClient(baseURL string) *CEPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")
	return &CEPClient{client: client}
}

func (c *CEPClient) Lookup(ctx context.Context, cep string) (*Address, error) {
	digits := nonDigits.ReplaceAllString(cep, "")
	if len(digits) != 8 {
		return nil, ErrInvalidCEP
	}

	var body viaCEPResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/ws/" + digits + "/json/")
	if err != nil {
		return nil, fmt.Errorf("viacep request failed: %w", err)
	}
	if resp.StatusCode() == 400 {
		return nil, ErrInvalidCEP
	}
	if resp.IsError() {
		return nil, fmt.Errorf("viacep request failed with status %d", resp.StatusCode())
	}
	// ViaCEP answers unknown codes with 200 and {"erro": true}.
	if body.Erro != nil {
		return nil, ErrCEPNotFound
	}

	return &Address{
		Cep:          body.Cep,
		Street:       body.Logradouro,
		Complement:   body.Complemento,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}
