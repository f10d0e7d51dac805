// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "github.com/shopspring/decimal"

// StockItem representa um produto disponível no armazém
type StockItem struct {
	ID            string          `json:"id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CriticalStock int             `json:"critical_stock"` // Abaixo deste valor o item entra em alerta
}

// StockValue retorna o valor do item em estoque pelo preço de custo
func (i *StockItem) StockValue() decimal.Decimal {
	return i.CostPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PotentialRevenue retorna o valor do item em estoque pelo preço de venda
func (i *StockItem) PotentialRevenue() decimal.Decimal {
	return i.SellingPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsCritical indica se a quantidade está estritamente abaixo do limite crítico
func (i *StockItem) IsCritical() bool {
	return i.Quantity < i.CriticalStock
}
