package market

import "github.com/amirasaad/market/pkg/dto"

// TransferResponse is returned by purchase and sell.
type TransferResponse struct {
	Item   *dto.ItemRead `json:"item"`
	Budget string        `json:"budget" example:"100.00"`
}
