package msgtemplate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ForeachAndTotal(t *testing.T) {
	data := Data{
		Products: []Item{{Title: "Item1", Quantity: 2}},
		Vars:     map[string]string{"total": "50"},
	}

	got, err := Render("%%foreach products: $product: $quantity\n%%\nTotal: {{total}}", data)

	require.NoError(t, err)
	assert.Equal(t, "Item1: 2\n\nTotal: 50", got)
	assert.NotContains(t, got, "%%")
	assert.NotContains(t, got, "{{")
	assert.NotContains(t, got, "}}")

	itemAt := strings.Index(got, "Item1: 2")
	totalAt := strings.Index(got, "Total: 50")
	assert.True(t, itemAt >= 0 && totalAt > itemAt)
}

func TestRender_JoinsSegmentsWithNewline(t *testing.T) {
	data := Data{
		Products: []Item{{Title: "Tea", Quantity: 1}, {Title: "Cake", Quantity: 3}},
		Vars:     map[string]string{"total": "12.5", "currency": "USD"},
	}

	got, err := Render("Order:\n%%foreach products: - $quantity x $product%%\n{{ total }} {{currency}}", data)

	require.NoError(t, err)
	assert.Equal(t, "Order:\n- 1 x Tea\n- 3 x Cake\n12.5 USD", got)
}

func TestRender_DefaultTemplate(t *testing.T) {
	data := Data{
		Products: []Item{{Title: "Bread", Quantity: 2}, {Title: "Milk", Quantity: 1}},
		Vars:     map[string]string{"total": "7", "currency": "LBP"},
	}

	got, err := Render(DefaultTemplate, data)

	require.NoError(t, err)
	assert.Equal(t, "Hello / السلام عليكم\nBread: 2\nMilk: 1\nTotal / الاجمالي: 7 LBP", got)
}

func TestRender_EmptyProducts(t *testing.T) {
	got, err := Render("A%%foreach products: $product%%B", Data{})

	require.NoError(t, err)
	assert.Equal(t, "AB", got)
}

func TestRender_UnknownVariableIsEmpty(t *testing.T) {
	got, err := Render("x{{missing}}y", Data{Vars: map[string]string{"total": "1"}})

	require.NoError(t, err)
	assert.Equal(t, "xy", got)
}

func TestRender_TitlesAreNotReparsed(t *testing.T) {
	data := Data{
		Products: []Item{{Title: "{{total}} %%foreach products: $quantity%% $product", Quantity: 4}},
		Vars:     map[string]string{"total": "99"},
	}

	got, err := Render("%%foreach products: [$product]%% = {{total}}", data)

	require.NoError(t, err)
	assert.Equal(t, "[{{total}} %%foreach products: $quantity%% $product] = 99", got)
}

func TestRender_VarsAreNotReparsed(t *testing.T) {
	got, err := Render("{{shop}}", Data{Vars: map[string]string{"shop": "{{total}}", "total": "1"}})

	require.NoError(t, err)
	assert.Equal(t, "{{total}}", got)
}

func TestRender_UnclosedVariableIsLiteral(t *testing.T) {
	got, err := Render("Total: {{total", Data{Vars: map[string]string{"total": "5"}})

	require.NoError(t, err)
	assert.Equal(t, "Total: {{total", got)
}

func TestRender_PlaceholdersOutsideForeachAreLiteral(t *testing.T) {
	got, err := Render("$product %%products%%", Data{Products: []Item{{Title: "x", Quantity: 1}}})

	require.NoError(t, err)
	assert.Equal(t, "$product %%products%%", got)
}

func TestRender_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{name: "unterminated block", template: "Hi %%foreach products: $product"},
		{name: "missing colon", template: "%%foreach products $product%%"},
		{name: "unknown collection", template: "%%foreach reviews: $product%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.template, Data{})
			assert.ErrorIs(t, err, ErrMalformedTemplate)
			assert.ErrorIs(t, Validate(tt.template), ErrMalformedTemplate)
		})
	}
}
