package dataprocessing

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "returnsight/internal/errors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raw.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadRawCSV(t *testing.T) {
	content := `Transaction ID,Item ID,Item Name,Category,Version,Date,Final Quantity,Final Revenue,Total Revenue,Price Reductions,Sales Tax,Purchased Item Count,Buyer ID
1.23457e+09,9.87654e+08,Wool Sweater,Apparel,M / Blue,2024-03-05,1,49.99,54.99,5,4.12,1,B-100
1.23458e+09,9.87655e+08,Desk Lamp,Home,One Size,2024-03-06,-1,-29.99,-32.99,0,2.47,1,B-101
`
	records, err := ReadRawCSV(writeTempCSV(t, content))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Wool Sweater", records[0].ItemName)
	assert.Equal(t, "1.23457e+09", records[0].TransactionID)
	assert.Equal(t, 49.99, records[0].FinalRevenue)
	assert.Equal(t, -1.0, records[1].FinalQuantity)
	assert.Equal(t, "B-101", records[1].BuyerID)
}

func TestReadRawCSVColumnOrderIndependent(t *testing.T) {
	// Same data with columns shuffled; header-name mapping must still work.
	content := `Category,Item Name,Buyer ID,Transaction ID,Item ID,Version,Date,Final Quantity,Final Revenue,Total Revenue,Price Reductions,Sales Tax,Purchased Item Count
Apparel,Wool Sweater,B-100,1.23457e+09,9.87654e+08,M / Blue,2024-03-05,1,49.99,54.99,5,4.12,1
`
	records, err := ReadRawCSV(writeTempCSV(t, content))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Wool Sweater", records[0].ItemName)
	assert.Equal(t, "Apparel", records[0].Category)
	assert.Equal(t, 54.99, records[0].TotalRevenue)
}

func TestReadRawCSVMissingColumns(t *testing.T) {
	content := "Item Name,Category\nSweater,Apparel\n"

	_, err := ReadRawCSV(writeTempCSV(t, content))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), "Final Quantity")
}

func TestReadRawCSVMissingNumericBecomesNaN(t *testing.T) {
	content := `Transaction ID,Item ID,Item Name,Category,Version,Date,Final Quantity,Final Revenue,Total Revenue,Price Reductions,Sales Tax,Purchased Item Count,Buyer ID
1,2,Sweater,Apparel,M,2024-01-01,1,,,,,1,B-1
`
	records, err := ReadRawCSV(writeTempCSV(t, content))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.True(t, math.IsNaN(records[0].FinalRevenue))
	assert.True(t, math.IsNaN(records[0].TotalRevenue))
	assert.True(t, math.IsNaN(records[0].PriceReductions))
	assert.True(t, math.IsNaN(records[0].SalesTax))
	assert.Equal(t, 1.0, records[0].PurchasedItemCount)
}

func TestReadRawCSVMissingFile(t *testing.T) {
	_, err := ReadRawCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}

func TestMapColumnsCaseInsensitive(t *testing.T) {
	columnMap, err := mapColumns(
		[]string{"ITEM NAME", "category"},
		[]string{"Item Name", "Category"},
	)
	require.NoError(t, err)
	assert.Equal(t, 0, columnMap["Item Name"])
	assert.Equal(t, 1, columnMap["Category"])
}
