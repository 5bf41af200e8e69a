package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// sem 0/O e 1/I/l
const readableAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const (
	reportSuffixSize = 8
	documentCodeSize = 10
)

// ReportSuffix distingue arquivos de relatório gerados para o mesmo período
func ReportSuffix() (string, error) {
	return gonanoid.Generate(readableAlphabet, reportSuffixSize)
}

// DocumentCode gera códigos de documento como ALB-7K2M9QX4TB
func DocumentCode(prefix string) (string, error) {
	id, err := gonanoid.Generate(readableAlphabet, documentCodeSize)
	if err != nil {
		return "", err
	}
	return prefix + "-" + id, nil
}
