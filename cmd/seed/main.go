// cmd/seed/main.go — Popula o banco com dados de demonstração.
// Uso: go run cmd/seed/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/infra"
	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "postgres://rh:rh@localhost:5432/gestao_funcionarios?sslmode=disable"
	}

	db, err := infra.NewDatabase(dsn)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	var count int64
	if err := db.Model(&model.Departamento{}).Count(&count).Error; err != nil {
		log.Fatalf("count error: %v", err)
	}
	if count > 0 {
		fmt.Println("Banco já populado, nada a fazer.")
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		descTI := "Tecnologia da Informação"
		descMkt := "Marketing e Comunicação"
		descVendas := "Vendas e Atendimento"

		ti := model.Departamento{
			Nome:        "TI",
			Orcamento:   decimal.NewFromInt(500000),
			Localizacao: "São Paulo",
			DataCriacao: time.Now(),
			Descricao:   &descTI,
		}
		marketing := model.Departamento{
			Nome:        "Marketing",
			Orcamento:   decimal.NewFromInt(300000),
			Localizacao: "Rio de Janeiro",
			DataCriacao: time.Now(),
			Descricao:   &descMkt,
		}
		vendas := model.Departamento{
			Nome:        "Vendas",
			Orcamento:   decimal.NewFromInt(400000),
			Localizacao: "Belo Horizonte",
			DataCriacao: time.Now(),
			Descricao:   &descVendas,
		}
		for _, d := range []*model.Departamento{&ti, &marketing, &vendas} {
			if err := tx.Create(d).Error; err != nil {
				return err
			}
		}

		carlos := model.Funcionario{
			Nome:            "Carlos Mendes",
			Email:           "carlos.mendes@empresa.com",
			CPF:             "111.222.333-44",
			Cargo:           "Gerente de TI",
			Salario:         decimal.NewFromInt(15000),
			DataContratacao: time.Now().AddDate(-3, 0, 0),
			DepartamentoID:  ti.ID,
		}
		fernanda := model.Funcionario{
			Nome:            "Fernanda Souza",
			Email:           "fernanda.souza@empresa.com",
			CPF:             "222.333.444-55",
			Cargo:           "Gerente de Marketing",
			Salario:         decimal.NewFromInt(13000),
			DataContratacao: time.Now().AddDate(-2, -6, 0),
			DepartamentoID:  marketing.ID,
		}
		for _, f := range []*model.Funcionario{&carlos, &fernanda} {
			if err := tx.Create(f).Error; err != nil {
				return err
			}
		}

		joao := model.Funcionario{
			Nome:            "João Silva",
			Email:           "joao.silva@empresa.com",
			CPF:             "333.444.555-66",
			Cargo:           "Desenvolvedor Pleno",
			Salario:         decimal.NewFromInt(8500),
			DataContratacao: time.Now().AddDate(-1, -8, 0),
			DepartamentoID:  ti.ID,
			SupervisorID:    &carlos.ID,
		}
		maria := model.Funcionario{
			Nome:            "Maria Oliveira",
			Email:           "maria.oliveira@empresa.com",
			CPF:             "444.555.666-77",
			Cargo:           "Analista de Marketing Júnior",
			Salario:         decimal.NewFromInt(4500),
			DataContratacao: time.Now().AddDate(0, -4, 0),
			DepartamentoID:  marketing.ID,
			SupervisorID:    &fernanda.ID,
		}
		for _, f := range []*model.Funcionario{&joao, &maria} {
			if err := tx.Create(f).Error; err != nil {
				return err
			}
		}

		perfis := []model.Perfil{
			{
				FuncionarioID: joao.ID,
				Idade:         29,
				Endereco:      "Rua das Flores, 123 - São Paulo/SP",
				Telefone:      "(11) 98765-4321",
				Genero:        "Masculino",
				EstadoCivil:   "Solteiro",
			},
			{
				FuncionarioID: maria.ID,
				Idade:         24,
				Endereco:      "Av. Atlântica, 456 - Rio de Janeiro/RJ",
				Telefone:      "(21) 91234-5678",
				Genero:        "Feminino",
				EstadoCivil:   "Casada",
			},
		}
		for i := range perfis {
			if err := tx.Create(&perfis[i]).Error; err != nil {
				return err
			}
		}

		historico := []model.HistoricoCargo{
			{
				FuncionarioID: joao.ID,
				CargoAnterior: "Estagiário de Desenvolvimento",
				NovoCargo:     "Desenvolvedor Júnior",
				DataAlteracao: time.Now().AddDate(-1, 0, 0),
				Motivo:        "Efetivação após estágio",
				AprovadoPor:   "Carlos Mendes",
			},
			{
				FuncionarioID: joao.ID,
				CargoAnterior: "Desenvolvedor Júnior",
				NovoCargo:     "Desenvolvedor Pleno",
				DataAlteracao: time.Now().AddDate(0, -3, 0),
				Motivo:        "Promoção por desempenho",
				AprovadoPor:   "Carlos Mendes",
			},
		}
		for i := range historico {
			if err := tx.Create(&historico[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Fatalf("seed error: %v", err)
	}

	fmt.Println("✅ Dados de demonstração criados.")
}
