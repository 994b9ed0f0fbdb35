package mocks

//go:generate mockery --name Queries --srcpkg github.com/aevon-lab/catalog-pricing/internal/pricing --output ./pricing --outpkg pricingmocks --with-expecter
//go:generate mockery --name Invalidator --srcpkg github.com/aevon-lab/catalog-pricing/internal/catalog --output ./catalog --outpkg catalogmocks --with-expecter
